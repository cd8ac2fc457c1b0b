package controllers

import (
	"net/http"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ManagerController struct {
	DB *gorm.DB
}

// Summary reports headcounts, aggregate available capacity and the
// underutilized engineers. Recomputed on every request from the current
// assignment state.
func (mc *ManagerController) Summary(c *gin.Context) {
	var engineers, projects int64
	if err := mc.DB.Model(&models.User{}).
		Where("role = ?", constants.RoleEngineer).
		Count(&engineers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error retrieving summary"})
		return
	}
	if err := mc.DB.Model(&models.Project{}).Count(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error retrieving summary"})
		return
	}

	capacityAvailable, underutilized, err := utils.UtilizationSummary(mc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error retrieving summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"engineers":         engineers,
		"projects":          projects,
		"capacityAvailable": capacityAvailable,
		"underutilized":     underutilized,
	})
}

// EngineerCapacity lists every engineer with their committed allocation and
// a per-project breakdown.
func (mc *ManagerController) EngineerCapacity(c *gin.Context) {
	var engineers []models.User
	if err := mc.DB.Where("role = ?", constants.RoleEngineer).Find(&engineers).Error; err != nil {
		fail(c, err)
		return
	}

	type assignmentEntry struct {
		Project    string `json:"project"`
		Allocation int    `json:"allocation"`
	}
	type engineerEntry struct {
		ID              uint              `json:"id"`
		Name            string            `json:"name"`
		Email           string            `json:"email"`
		TotalAllocation int               `json:"totalAllocation"`
		IsAvailable     bool              `json:"isAvailable"`
		Assignments     []assignmentEntry `json:"assignments"`
	}

	result := []engineerEntry{}
	for _, eng := range engineers {
		var assignments []models.Assignment
		if err := mc.DB.Where("user_id = ?", eng.ID).Preload("Project").Find(&assignments).Error; err != nil {
			fail(c, err)
			return
		}

		entry := engineerEntry{
			ID:          eng.ID,
			Name:        eng.Name,
			Email:       eng.Email,
			Assignments: []assignmentEntry{},
		}
		for _, a := range assignments {
			entry.TotalAllocation += a.Allocation
			projectName := ""
			if a.Project != nil {
				projectName = a.Project.Name
			}
			entry.Assignments = append(entry.Assignments, assignmentEntry{
				Project:    projectName,
				Allocation: a.Allocation,
			})
		}
		entry.IsAvailable = entry.TotalAllocation < constants.CapacityCeiling
		result = append(result, entry)
	}

	c.JSON(http.StatusOK, result)
}
