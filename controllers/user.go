package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/middleware"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func (uc *UserController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetEngineers(c *gin.Context) {
	var engineers []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	if err := uc.DB.Model(&models.User{}).
		Where("role = ?", constants.RoleEngineer).
		Select("id, name").
		Scan(&engineers).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, engineers)
}

func (uc *UserController) GetMe(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, middleware.CurrentUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	c.JSON(http.StatusOK, user)
}

type profileInput struct {
	Name           *string `json:"name"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Phone          *string `json:"phone"`
	Bio            *string `json:"bio"`
	AvatarURL      *string `json:"avatarUrl"`
	Country        *string `json:"country"`
	City           *string `json:"city"`
	PostalCode     *string `json:"postalCode"`
	TaxID          *string `json:"taxId"`
	Skills         *string `json:"skills"`
	MaxCapacity    *int    `json:"maxCapacity"`
	Department     *string `json:"department"`
	Certifications *string `json:"certifications"`
	Experience     *string `json:"experience"`
}

func (in *profileInput) apply(user *models.User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&user.Name, in.Name)
	set(&user.FirstName, in.FirstName)
	set(&user.LastName, in.LastName)
	set(&user.Phone, in.Phone)
	set(&user.Bio, in.Bio)
	set(&user.AvatarURL, in.AvatarURL)
	set(&user.Country, in.Country)
	set(&user.City, in.City)
	set(&user.PostalCode, in.PostalCode)
	set(&user.TaxID, in.TaxID)
	set(&user.Skills, in.Skills)
	set(&user.Department, in.Department)
	set(&user.Certifications, in.Certifications)
	set(&user.Experience, in.Experience)
	if in.MaxCapacity != nil {
		user.MaxCapacity = *in.MaxCapacity
	}
}

// UpdateMe edits the current user's own profile. Self-edit needs no
// resolver check.
func (uc *UserController) UpdateMe(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, middleware.CurrentUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input.apply(&user)

	if err := uc.DB.Save(&user).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated.", "user": user})
}

func (uc *UserController) DeleteMe(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, middleware.CurrentUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}

	if user.IsSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Super-admin cannot delete their own account."})
		return
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted."})
}

func (uc *UserController) UpdateAvatar(c *gin.Context) {
	var input struct {
		AvatarURL string `json:"avatarUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatarUrl required."})
		return
	}

	id := middleware.CurrentUserID(c)
	if err := uc.DB.Model(&models.User{}).Where("id = ?", id).
		Update("avatar_url", input.AvatarURL).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar updated.",
		"user":    gin.H{"id": id, "avatarUrl": input.AvatarURL},
	})
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	var input struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters."})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}

	now := time.Now()
	if err := uc.DB.Model(&models.User{}).
		Where("id = ?", middleware.CurrentUserID(c)).
		Updates(map[string]any{"password": hashed, "last_password_change": now}).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}

// UpdateRole toggles a user between ENGINEER and MANAGER, gated by the
// resolver. The acting manager becomes the promoter of record in both
// directions. If the updated row belongs to the acting user a fresh token
// is returned so stale role claims never outlive the change.
func (uc *UserController) UpdateRole(c *gin.Context) {
	meID := middleware.CurrentUserID(c)
	targetID := c.Param("id")

	var input struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		(input.Role != constants.RoleEngineer && input.Role != constants.RoleManager) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role. Must be ENGINEER or MANAGER."})
		return
	}

	var me, target models.User
	if err := uc.DB.First(&me, meID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err := uc.DB.First(&target, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Target user not found."})
		return
	}

	if err := utils.CanChangeRole(me, target, input.Role); err != nil {
		fail(c, err)
		return
	}

	target.Role = input.Role
	target.ManagerID = &me.ID

	if err := uc.DB.Save(&target).Error; err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("user %d changed role of user %d to %s", me.ID, target.ID, input.Role)

	resp := gin.H{
		"message": "User role changed to " + input.Role + ".",
		"user":    target,
	}
	if target.ID == me.ID {
		token, err := utils.GenerateJWT(target)
		if err != nil {
			fail(c, err)
			return
		}
		resp["token"] = token
	}

	c.JSON(http.StatusOK, resp)
}

type editUserInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Skills      *string `json:"skills"`
	MaxCapacity *int    `json:"maxCapacity"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Department  *string `json:"department"`
}

// UpdateUser edits another user's record, gated by the resolver.
func (uc *UserController) UpdateUser(c *gin.Context) {
	meID := middleware.CurrentUserID(c)

	var input editUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var me, target models.User
	if err := uc.DB.First(&me, meID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err := uc.DB.First(&target, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}

	if err := utils.CanEdit(me, target); err != nil {
		fail(c, err)
		return
	}

	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.Skills != nil {
		target.Skills = *input.Skills
	}
	if input.MaxCapacity != nil {
		target.MaxCapacity = *input.MaxCapacity
	}
	if input.Department != nil {
		target.Department = *input.Department
	}
	if input.FirstName != nil || input.LastName != nil {
		if input.FirstName != nil {
			target.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			target.LastName = *input.LastName
		}
		target.Name = strings.TrimSpace(target.FirstName + " " + target.LastName)
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			fail(c, err)
			return
		}
		target.Password = hashed
	}

	if err := uc.DB.Save(&target).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated.", "user": target})
}

// DeleteUser removes another user's account, gated by the resolver.
func (uc *UserController) DeleteUser(c *gin.Context) {
	meID := middleware.CurrentUserID(c)

	var me, target models.User
	if err := uc.DB.First(&me, meID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err := uc.DB.First(&target, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}

	if err := utils.CanDelete(me, target); err != nil {
		fail(c, err)
		return
	}

	if err := uc.DB.Delete(&target).Error; err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("user %d deleted user %d", me.ID, target.ID)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
}
