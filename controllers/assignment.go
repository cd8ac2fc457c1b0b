package controllers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/middleware"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssignmentController struct {
	DB *gorm.DB
}

type createAssignmentInput struct {
	UserID     uint  `json:"userId"`
	ProjectID  uint  `json:"projectId"`
	TaskID     *uint `json:"taskId"`
	Allocation *int  `json:"allocation"`
}

// Create assigns an engineer to a project. The closed-project guard, the
// capacity guard and the insert run in one serializable transaction; at
// weaker isolation two concurrent requests could both read the same sum and
// jointly push an engineer past the ceiling.
func (ac *AssignmentController) Create(c *gin.Context) {
	var input createAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.UserID == 0 || input.ProjectID == 0 || input.Allocation == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId, projectId, and allocation are required"})
		return
	}
	allocation := *input.Allocation
	if allocation < 1 || allocation > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Allocation must be between 1 and 100%"})
		return
	}

	var assignment models.Assignment
	firstOnProject := false

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, input.ProjectID).Error; err != nil || project.IsClosed {
			return utils.Conflictf("Cannot assign tasks for a closed project.")
		}

		if err := utils.CheckCapacity(tx, input.UserID, allocation); err != nil {
			return err
		}

		assignment = models.Assignment{
			UserID:     input.UserID,
			ProjectID:  input.ProjectID,
			TaskID:     input.TaskID,
			Allocation: allocation,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		if input.TaskID != nil {
			if err := tx.Model(&models.Task{}).Where("id = ?", *input.TaskID).
				Update("assigned_to_id", input.UserID).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.Assignment{}).
			Where("user_id = ? AND project_id = ?", input.UserID, input.ProjectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 1 {
			firstOnProject = true
			if err := tx.Model(&models.User{}).Where("id = ?", input.UserID).
				Update("projects_assigned", gorm.Expr("projects_assigned + 1")).Error; err != nil {
				return err
			}
		}

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		fail(c, err)
		return
	}

	if firstOnProject {
		if err := utils.RefreshPerformance(ac.DB, input.UserID); err != nil {
			fail(c, err)
			return
		}
	}

	if err := ac.DB.
		Preload("User").Preload("Project").Preload("Task").
		First(&assignment, assignment.ID).Error; err != nil {
		fail(c, err)
		return
	}

	if assignment.Task != nil && assignment.Project != nil {
		notification := models.Notification{
			UserID: assignment.UserID,
			Type:   constants.NotificationTaskAssigned,
			Message: fmt.Sprintf("You have been assigned a new task: %s in project %s",
				assignment.Task.Title, assignment.Project.Name),
		}
		if err := ac.DB.Create(&notification).Error; err != nil {
			fail(c, err)
			return
		}
	}

	logging.Logger.Infof("assigned user %d to project %d at %d%%", input.UserID, input.ProjectID, allocation)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Engineer assigned successfully",
		"assignment": assignment,
	})
}

// List returns assignments scoped by role: engineers see their own, a
// manager sees all, optionally filtered by userId (or "me").
func (ac *AssignmentController) List(c *gin.Context) {
	query := ac.DB.
		Preload("User").
		Preload("Project").
		Preload("Project.Assignments.User").
		Preload("Task")

	role, _ := c.Get("role")
	userID := middleware.CurrentUserID(c)

	switch {
	case role == constants.RoleEngineer:
		query = query.Where("user_id = ?", userID)
	case c.Query("userId") == "me":
		query = query.Where("user_id = ?", userID)
	case c.Query("userId") != "":
		query = query.Where("user_id = ?", c.Query("userId"))
	}

	var assignments []models.Assignment
	if err := query.Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch assignments."})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// Delete unassigns an engineer, clearing the linked task's assignee. The
// freed allocation is immediately available again.
func (ac *AssignmentController) Delete(c *gin.Context) {
	var assignment models.Assignment
	if err := ac.DB.First(&assignment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Assignment not found."})
		return
	}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if assignment.TaskID != nil {
			if err := tx.Model(&models.Task{}).Where("id = ?", *assignment.TaskID).
				Update("assigned_to_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&assignment).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Engineer unassigned successfully."})
}
