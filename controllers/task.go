package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/middleware"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskController struct {
	DB *gorm.DB
}

// Add creates a task under an existing project.
func (tc *TaskController) Add(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project id"})
		return
	}

	priority := input.Priority
	if priority == "" {
		priority = constants.TaskPriorityMedium
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Status:      constants.TaskStatusPending,
		ProjectID:   uint(projectID),
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Assign points a task at an engineer without touching allocations.
func (tc *TaskController) Assign(c *gin.Context) {
	var input struct {
		AssignedToID *uint `json:"assignedToId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var task models.Task
	if err := tc.DB.First(&task, c.Param("taskId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	task.AssignedToID = input.AssignedToID
	if err := tc.DB.Save(&task).Error; err != nil {
		fail(c, err)
		return
	}

	if err := tc.DB.Preload("AssignedTo").First(&task, task.ID).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateStatus moves a task between PENDING, IN_PROGRESS and COMPLETED.
func (tc *TaskController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	switch input.Status {
	case constants.TaskStatusPending, constants.TaskStatusInProgress, constants.TaskStatusCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	var task models.Task
	if err := tc.DB.First(&task, c.Param("taskId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	task.Status = input.Status
	if err := tc.DB.Save(&task).Error; err != nil {
		fail(c, err)
		return
	}

	if err := tc.DB.Preload("AssignedTo").First(&task, task.ID).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// RequestCompletion flags a task as awaiting manager approval and notifies
// the project's manager.
func (tc *TaskController) RequestCompletion(c *gin.Context) {
	var task models.Task
	if err := tc.DB.Preload("Project").Preload("AssignedTo").
		First(&task, c.Param("taskId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	task.CompletionRequested = true
	if err := tc.DB.Model(&task).Update("completion_requested", true).Error; err != nil {
		fail(c, err)
		return
	}

	if task.Project != nil && task.Project.ManagerID != 0 {
		requester := "an engineer"
		if task.AssignedTo != nil {
			requester = task.AssignedTo.Name
		}
		notification := models.Notification{
			UserID: task.Project.ManagerID,
			Type:   constants.NotificationCompletionRequested,
			Message: fmt.Sprintf("Completion requested by %s for task %s in project %s",
				requester, task.Title, task.Project.Name),
		}
		if err := tc.DB.Create(&notification).Error; err != nil {
			fail(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Completion requested", "task": task})
}

// ApproveCompletion completes the task, credits the assigned engineer's
// counter, refreshes their performance label and notifies them.
func (tc *TaskController) ApproveCompletion(c *gin.Context) {
	var task models.Task
	if err := tc.DB.Preload("Project").First(&task, c.Param("taskId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Updates(map[string]any{
			"status":               constants.TaskStatusCompleted,
			"completion_requested": false,
		}).Error; err != nil {
			return err
		}

		if task.AssignedToID != nil {
			if err := tx.Model(&models.User{}).Where("id = ?", *task.AssignedToID).
				Update("tasks_completed", gorm.Expr("tasks_completed + 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	if task.AssignedToID != nil {
		if err := utils.RefreshPerformance(tc.DB, *task.AssignedToID); err != nil {
			fail(c, err)
			return
		}

		projectName := ""
		if task.Project != nil {
			projectName = task.Project.Name
		}
		notification := models.Notification{
			UserID: *task.AssignedToID,
			Type:   constants.NotificationCompletionApproved,
			Message: fmt.Sprintf("Your completion request for task %q in project %q was approved.",
				task.Title, projectName),
		}
		if err := tc.DB.Create(&notification).Error; err != nil {
			fail(c, err)
			return
		}
	}

	logging.Logger.Infof("task %d completion approved", task.ID)

	task.Status = constants.TaskStatusCompleted
	task.CompletionRequested = false
	c.JSON(http.StatusOK, gin.H{"message": "Task marked as completed", "task": task})
}

// RejectCompletion clears the pending flag and notifies the engineer; the
// task status is untouched.
func (tc *TaskController) RejectCompletion(c *gin.Context) {
	var task models.Task
	if err := tc.DB.Preload("Project").First(&task, c.Param("taskId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	if err := tc.DB.Model(&task).Update("completion_requested", false).Error; err != nil {
		fail(c, err)
		return
	}

	if task.AssignedToID != nil {
		projectName := ""
		if task.Project != nil {
			projectName = task.Project.Name
		}
		notification := models.Notification{
			UserID: *task.AssignedToID,
			Type:   constants.NotificationCompletionRejected,
			Message: fmt.Sprintf("Your completion request for task %q in project %q was rejected.",
				task.Title, projectName),
		}
		if err := tc.DB.Create(&notification).Error; err != nil {
			fail(c, err)
			return
		}
	}

	task.CompletionRequested = false
	c.JSON(http.StatusOK, gin.H{"message": "Completion request rejected", "task": task})
}

func (tc *TaskController) AddComment(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment content required"})
		return
	}

	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task id"})
		return
	}

	comment := models.TaskComment{
		TaskID:   uint(taskID),
		AuthorID: middleware.CurrentUserID(c),
		Content:  input.Content,
	}
	if err := tc.DB.Create(&comment).Error; err != nil {
		fail(c, err)
		return
	}

	if err := tc.DB.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (tc *TaskController) GetComments(c *gin.Context) {
	var comments []models.TaskComment
	if err := tc.DB.
		Where("task_id = ?", c.Param("taskId")).
		Preload("Author").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (tc *TaskController) CountComments(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil || taskID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"count": 0})
		return
	}

	var count int64
	if err := tc.DB.Model(&models.TaskComment{}).
		Where("task_id = ?", taskID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"count": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// DeleteComments clears every comment on a task.
func (tc *TaskController) DeleteComments(c *gin.Context) {
	if err := tc.DB.
		Where("task_id = ?", c.Param("taskId")).
		Delete(&models.TaskComment{}).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All comments deleted for this task."})
}
