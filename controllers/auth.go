package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

type registerInput struct {
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Department  string `json:"department"`
	Skills      string `json:"skills"`
	MaxCapacity *int   `json:"maxCapacity"`
}

// Register creates a new account. New registrations are always engineers;
// promotion happens through the role endpoint.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	name := input.Name
	if input.FirstName != "" || input.LastName != "" {
		name = strings.TrimSpace(input.FirstName + " " + input.LastName)
	}

	var count int64
	if err := ac.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		fail(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	maxCapacity := constants.DefaultMaxCapacity
	if input.MaxCapacity != nil {
		maxCapacity = *input.MaxCapacity
	}

	user := models.User{
		Name:        name,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    hashed,
		Role:        constants.RoleEngineer,
		Skills:      input.Skills,
		Department:  input.Department,
		MaxCapacity: maxCapacity,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("registered user %s (id=%d)", user.Email, user.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var user models.User

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ac.DB.
		Where("email = ?", input.Email).
		First(&user).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		return
	}

	now := time.Now()
	if err := ac.DB.Model(&user).Update("last_login", now).Error; err != nil {
		fail(c, err)
		return
	}

	// Login touches neither counter but the label is refreshed anyway, so a
	// stale label from an older write path heals itself here.
	if err := utils.RefreshPerformance(ac.DB, user.ID); err != nil {
		fail(c, err)
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("user %s (id=%d) logged in", user.Email, user.ID)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
		"name":  user.Name,
		"id":    user.ID,
		"email": user.Email,
	})
}
