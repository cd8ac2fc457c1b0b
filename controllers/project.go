package controllers

import (
	"net/http"
	"time"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/middleware"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	DB *gorm.DB
}

type taskInput struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type createProjectInput struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	StartDate   *time.Time  `json:"startDate"`
	Tasks       []taskInput `json:"tasks"`
}

// Create opens a new project, optionally with an initial task list. The
// acting manager owns it.
func (pc *ProjectController) Create(c *gin.Context) {
	var input createProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	meID := middleware.CurrentUserID(c)

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		CreatedByID: meID,
		ManagerID:   meID,
	}
	for _, t := range input.Tasks {
		priority := t.Priority
		if priority == "" {
			priority = constants.TaskPriorityMedium
		}
		project.Tasks = append(project.Tasks, models.Task{
			Title:       t.Title,
			Description: t.Description,
			Priority:    priority,
			Status:      constants.TaskStatusPending,
		})
	}

	if err := pc.DB.Create(&project).Error; err != nil {
		fail(c, err)
		return
	}

	if err := pc.DB.Preload("Tasks").Preload("CreatedBy").First(&project, project.ID).Error; err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("user %d created project %d (%s)", meID, project.ID, project.Name)

	c.JSON(http.StatusCreated, project)
}

func (pc *ProjectController) List(c *gin.Context) {
	var projects []models.Project
	if err := pc.DB.
		Preload("CreatedBy").
		Preload("Tasks").
		Order("start_date DESC").
		Find(&projects).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListAssigned returns the distinct projects the acting engineer is
// assigned to.
func (pc *ProjectController) ListAssigned(c *gin.Context) {
	var assignments []models.Assignment
	if err := pc.DB.
		Where("user_id = ?", middleware.CurrentUserID(c)).
		Preload("Project").
		Preload("Project.Assignments.User").
		Preload("Project.Assignments.Task").
		Preload("Project.Tasks.AssignedTo").
		Find(&assignments).Error; err != nil {
		fail(c, err)
		return
	}

	seen := make(map[uint]bool)
	projects := []models.Project{}
	for _, a := range assignments {
		if a.Project == nil || seen[a.Project.ID] {
			continue
		}
		seen[a.Project.ID] = true
		projects = append(projects, *a.Project)
	}

	c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) Get(c *gin.Context) {
	var project models.Project
	if err := pc.DB.
		Preload("Assignments.User").
		Preload("Assignments.Task").
		Preload("Tasks.AssignedTo").
		Preload("Tasks.Comments.Author").
		Preload("CreatedBy").
		First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

type updateTaskInput struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

type updateProjectInput struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Tasks       []updateTaskInput `json:"tasks"`
}

// Update edits a project and reconciles its task list: tasks missing from
// the payload are removed along with their assignments and comments,
// existing tasks are updated in place, tasks without an id are added.
// Fields absent from the payload are left untouched.
func (pc *ProjectController) Update(c *gin.Context) {
	var input updateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var project models.Project
	if err := pc.DB.Preload("Tasks").First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		keep := make(map[uint]bool)
		for _, t := range input.Tasks {
			if t.ID != 0 {
				keep[t.ID] = true
			}
		}

		var removed []uint
		for _, t := range project.Tasks {
			if !keep[t.ID] {
				removed = append(removed, t.ID)
			}
		}

		if len(removed) > 0 {
			if err := tx.Where("task_id IN ?", removed).Delete(&models.TaskComment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("task_id IN ?", removed).Delete(&models.Assignment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", removed).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}

		for _, t := range input.Tasks {
			if t.ID != 0 {
				changes := map[string]any{}
				if t.Title != nil {
					changes["title"] = *t.Title
				}
				if t.Description != nil {
					changes["description"] = *t.Description
				}
				if t.Status != nil {
					changes["status"] = *t.Status
				}
				if t.Priority != nil {
					changes["priority"] = *t.Priority
				}
				if len(changes) == 0 {
					continue
				}
				if err := tx.Model(&models.Task{}).Where("id = ?", t.ID).
					Updates(changes).Error; err != nil {
					return err
				}
				continue
			}

			task := models.Task{
				Status:    constants.TaskStatusPending,
				Priority:  constants.TaskPriorityMedium,
				ProjectID: project.ID,
			}
			if t.Title != nil {
				task.Title = *t.Title
			}
			if t.Description != nil {
				task.Description = *t.Description
			}
			if t.Status != nil {
				task.Status = *t.Status
			}
			if t.Priority != nil {
				task.Priority = *t.Priority
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
		}

		changes := map[string]any{}
		if input.Name != nil {
			changes["name"] = *input.Name
		}
		if input.Description != nil {
			changes["description"] = *input.Description
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&project).Updates(changes).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	var updated models.Project
	if err := pc.DB.
		Preload("Tasks.Comments.Author").
		Preload("Tasks.AssignedTo").
		Preload("Assignments.User").
		Preload("Assignments.Task").
		First(&updated, project.ID).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Close soft-closes a project: every assignment is snapshotted into a
// backup row, linked tasks lose their assignee, the assignments go away and
// the project is flagged closed. One transaction, so a crash cannot strand
// half-backed-up assignments.
func (pc *ProjectController) Close(c *gin.Context) {
	var project models.Project
	if err := pc.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var assignments []models.Assignment
		if err := tx.Where("project_id = ?", project.ID).Find(&assignments).Error; err != nil {
			return err
		}

		for _, a := range assignments {
			backup := models.AssignmentBackup{
				UserID:     a.UserID,
				ProjectID:  a.ProjectID,
				TaskID:     a.TaskID,
				Allocation: a.Allocation,
				Role:       a.Role,
				StartDate:  a.StartDate,
				EndDate:    a.EndDate,
			}
			if err := tx.Create(&backup).Error; err != nil {
				return err
			}
		}

		for _, a := range assignments {
			if a.TaskID == nil {
				continue
			}
			if err := tx.Model(&models.Task{}).Where("id = ?", *a.TaskID).
				Update("assigned_to_id", nil).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		return tx.Model(&project).Update("is_closed", true).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("project %d closed", project.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Project closed successfully", "project": project})
}

// Reopen restores the assignments snapshotted at close, verbatim except
// for new primary keys, re-attaches task assignees and drops the backups.
func (pc *ProjectController) Reopen(c *gin.Context) {
	var project models.Project
	if err := pc.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var backups []models.AssignmentBackup
		if err := tx.Where("project_id = ?", project.ID).Find(&backups).Error; err != nil {
			return err
		}

		for _, b := range backups {
			assignment := models.Assignment{
				UserID:     b.UserID,
				ProjectID:  b.ProjectID,
				TaskID:     b.TaskID,
				Allocation: b.Allocation,
				Role:       b.Role,
				StartDate:  b.StartDate,
				EndDate:    b.EndDate,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
			if b.TaskID != nil {
				if err := tx.Model(&models.Task{}).Where("id = ?", *b.TaskID).
					Update("assigned_to_id", b.UserID).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.AssignmentBackup{}).Error; err != nil {
			return err
		}

		return tx.Model(&project).Update("is_closed", false).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	logging.Logger.Infof("project %d reopened", project.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Project re-opened successfully", "project": project})
}

// Delete removes a project and everything hanging off it.
func (pc *ProjectController) Delete(c *gin.Context) {
	var project models.Project
	if err := pc.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint
		if err := tx.Model(&models.Task{}).Where("project_id = ?", project.ID).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.TaskComment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "project": project})
}
