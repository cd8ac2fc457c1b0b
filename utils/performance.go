package utils

import (
	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"gorm.io/gorm"
)

// PerformanceLabel derives the coarse performance label from the two
// counters. Pure and idempotent: same inputs, same label.
func PerformanceLabel(projectsAssigned, tasksCompleted int) string {
	if projectsAssigned == 0 {
		return constants.PerformanceNoProjects
	}

	ratio := float64(tasksCompleted) / float64(projectsAssigned)
	switch {
	case tasksCompleted >= projectsAssigned:
		return constants.PerformanceExcellent
	case ratio >= 0.75:
		return constants.PerformanceGood
	case ratio >= 0.5:
		return constants.PerformanceAverage
	default:
		return constants.PerformanceNeedsWork
	}
}

// RefreshPerformance recomputes and persists the label from the user's
// current counters. Called whenever either input changes: login, first
// assignment on a project, completion approval.
func RefreshPerformance(db *gorm.DB, userID uint) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return err
	}

	label := PerformanceLabel(user.ProjectsAssigned, user.TasksCompleted)
	return db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("performance", label).Error
}
