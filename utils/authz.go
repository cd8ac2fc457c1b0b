package utils

import (
	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"
)

// Role/authorization resolver. Each function is a pure decision over the
// acting user and the target user as currently stored: nil means the action
// is permitted, otherwise the returned authorization error explains the
// refusal. The promoter chain rules rely on ManagerID recording who last
// changed the target's role.

func isPromoter(actor, target models.User) bool {
	return target.ManagerID != nil && *target.ManagerID == actor.ID
}

func isOwnPromoter(actor, target models.User) bool {
	return actor.ManagerID != nil && *actor.ManagerID == target.ID
}

// CanChangeRole decides whether actor may set target's role to newRole.
func CanChangeRole(actor, target models.User, newRole string) error {
	if actor.ID == target.ID {
		return Authorizationf("You cannot change your own role.")
	}

	if target.IsSuperAdmin && !actor.IsSuperAdmin {
		return Authorizationf("Cannot change the super-admin's role.")
	}

	if actor.IsSuperAdmin {
		return nil
	}

	if isOwnPromoter(actor, target) {
		return Authorizationf("Cannot change your promoter's role.")
	}

	if target.Role == constants.RoleManager && newRole == constants.RoleEngineer && !isPromoter(actor, target) {
		return Authorizationf("You can only demote managers you promoted.")
	}

	if target.Role == constants.RoleManager && newRole == constants.RoleManager {
		return Authorizationf("User is already a manager.")
	}

	promote := target.Role == constants.RoleEngineer && newRole == constants.RoleManager
	demote := target.Role == constants.RoleManager && newRole == constants.RoleEngineer
	if !promote && !demote {
		return Authorizationf("Not allowed.")
	}

	return nil
}

// CanEdit decides whether actor may edit target's profile. Self-edit is
// always permitted.
func CanEdit(actor, target models.User) error {
	if target.IsSuperAdmin && !actor.IsSuperAdmin {
		return Authorizationf("Cannot edit the super-admin.")
	}

	if actor.IsSuperAdmin {
		return nil
	}

	if isOwnPromoter(actor, target) {
		return Authorizationf("Cannot edit your promoter.")
	}

	if actor.ID == target.ID ||
		target.Role == constants.RoleEngineer ||
		(target.Role == constants.RoleManager && isPromoter(actor, target)) {
		return nil
	}

	return Authorizationf("Not allowed.")
}

// CanDelete decides whether actor may delete target's account. Self-delete
// goes through the dedicated own-account endpoint instead.
func CanDelete(actor, target models.User) error {
	if actor.ID == target.ID {
		return Authorizationf("You cannot delete your own account here.")
	}

	if target.IsSuperAdmin && !actor.IsSuperAdmin {
		return Authorizationf("Cannot delete the super-admin.")
	}

	if actor.IsSuperAdmin {
		return nil
	}

	if isOwnPromoter(actor, target) {
		return Authorizationf("Cannot delete your promoter.")
	}

	if target.Role == constants.RoleEngineer ||
		(target.Role == constants.RoleManager && isPromoter(actor, target)) {
		return nil
	}

	return Authorizationf("Not allowed.")
}
