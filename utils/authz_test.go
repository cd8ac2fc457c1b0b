package utils

import (
	"testing"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"github.com/stretchr/testify/require"
)

func user(id uint, role string, opts ...func(*models.User)) models.User {
	u := models.User{ID: id, Role: role}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func superAdmin(u *models.User) { u.IsSuperAdmin = true }

func promotedBy(id uint) func(*models.User) {
	return func(u *models.User) { u.ManagerID = &id }
}

func TestCanChangeRole_SelfForbidden(t *testing.T) {
	me := user(1, constants.RoleManager)
	require.Error(t, CanChangeRole(me, me, constants.RoleEngineer))

	admin := user(2, constants.RoleManager, superAdmin)
	require.Error(t, CanChangeRole(admin, admin, constants.RoleEngineer))
}

func TestCanChangeRole_SuperAdminShield(t *testing.T) {
	admin := user(1, constants.RoleManager, superAdmin)
	mgr := user(2, constants.RoleManager)

	// A plain manager can never touch the super-admin, whatever their
	// other attributes say.
	require.Error(t, CanChangeRole(mgr, admin, constants.RoleEngineer))
	require.Error(t, CanEdit(mgr, admin))
	require.Error(t, CanDelete(mgr, admin))
}

func TestCanChangeRole_SuperAdminActsOnAnyone(t *testing.T) {
	admin := user(1, constants.RoleManager, superAdmin)
	mgr := user(2, constants.RoleManager, promotedBy(3))
	eng := user(4, constants.RoleEngineer)

	require.NoError(t, CanChangeRole(admin, mgr, constants.RoleEngineer))
	require.NoError(t, CanChangeRole(admin, eng, constants.RoleManager))
	require.NoError(t, CanEdit(admin, mgr))
	require.NoError(t, CanDelete(admin, eng))
}

func TestCanChangeRole_PromoterShield(t *testing.T) {
	promoter := user(2, constants.RoleManager)
	mgr := user(1, constants.RoleManager, promotedBy(2))

	require.Error(t, CanChangeRole(mgr, promoter, constants.RoleEngineer))
	require.Error(t, CanEdit(mgr, promoter))
	require.Error(t, CanDelete(mgr, promoter))
}

func TestCanChangeRole_DemotionRequiresPromoter(t *testing.T) {
	promoter := user(1, constants.RoleManager)
	other := user(2, constants.RoleManager)
	promoted := user(3, constants.RoleManager, promotedBy(1))

	require.NoError(t, CanChangeRole(promoter, promoted, constants.RoleEngineer))
	require.Error(t, CanChangeRole(other, promoted, constants.RoleEngineer))
}

func TestCanChangeRole_PromotionOnlyForEngineers(t *testing.T) {
	mgr := user(1, constants.RoleManager)
	eng := user(2, constants.RoleEngineer)
	alreadyMgr := user(3, constants.RoleManager, promotedBy(1))

	require.NoError(t, CanChangeRole(mgr, eng, constants.RoleManager))
	require.Error(t, CanChangeRole(mgr, alreadyMgr, constants.RoleManager))
	// Demoting an engineer is not a transition at all.
	require.Error(t, CanChangeRole(mgr, eng, constants.RoleEngineer))
}

func TestCanEdit_SelfAndScope(t *testing.T) {
	mgr := user(1, constants.RoleManager)
	eng := user(2, constants.RoleEngineer)
	promoted := user(3, constants.RoleManager, promotedBy(1))
	unrelated := user(4, constants.RoleManager)

	require.NoError(t, CanEdit(mgr, mgr))
	require.NoError(t, CanEdit(mgr, eng))
	require.NoError(t, CanEdit(mgr, promoted))
	require.Error(t, CanEdit(mgr, unrelated))
}

func TestCanDelete_SelfForbidden(t *testing.T) {
	mgr := user(1, constants.RoleManager)
	admin := user(2, constants.RoleManager, superAdmin)

	require.Error(t, CanDelete(mgr, mgr))
	require.Error(t, CanDelete(admin, admin))

	eng := user(3, constants.RoleEngineer)
	require.NoError(t, CanDelete(mgr, eng))
}
