package utils

import (
	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"gorm.io/gorm"
)

// Capacity ledger: the sum of a user's active allocation percentages.

// TotalAllocation returns the allocation currently committed across a
// user's active assignments.
func TotalAllocation(db *gorm.DB, userID uint) (int, error) {
	var total int64
	err := db.Model(&models.Assignment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(allocation), 0)").
		Scan(&total).Error
	return int(total), err
}

// RemainingCapacity floors at zero so over-committed users report 0 free
// rather than a negative number.
func RemainingCapacity(maxCapacity, allocated int) int {
	if remaining := maxCapacity - allocated; remaining > 0 {
		return remaining
	}
	return 0
}

// CheckCapacity guards a proposed assignment of `allocation` percent. The
// guard compares against the fixed 100 ceiling, not the user's MaxCapacity;
// the two are deliberately distinct (reporting uses MaxCapacity). Run it
// inside the same serializable transaction as the insert; at read-committed
// isolation two writers could both read the same sum and jointly exceed the
// ceiling.
func CheckCapacity(tx *gorm.DB, userID uint, allocation int) error {
	total, err := TotalAllocation(tx, userID)
	if err != nil {
		return err
	}
	if total+allocation > constants.CapacityCeiling {
		return Conflictf("Engineer already allocated %d%%. Cannot assign additional %d%%.", total, allocation)
	}
	return nil
}

// EngineerCapacity is one underutilized entry in the manager summary.
type EngineerCapacity struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// UtilizationSummary recomputes the aggregate remaining capacity across all
// engineers and the underutilized subset (remaining >= 30). Pure function
// of current assignment state; nothing is persisted.
func UtilizationSummary(db *gorm.DB) (int, []EngineerCapacity, error) {
	var engineers []models.User
	if err := db.Where("role = ?", constants.RoleEngineer).Find(&engineers).Error; err != nil {
		return 0, nil, err
	}

	type allocRow struct {
		UserID uint
		Total  int
	}
	var rows []allocRow
	if err := db.Model(&models.Assignment{}).
		Select("user_id, COALESCE(SUM(allocation), 0) AS total").
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return 0, nil, err
	}

	allocated := make(map[uint]int, len(rows))
	for _, r := range rows {
		allocated[r.UserID] = r.Total
	}

	capacityAvailable := 0
	underutilized := []EngineerCapacity{}
	for _, eng := range engineers {
		remaining := RemainingCapacity(eng.MaxCapacity, allocated[eng.ID])
		capacityAvailable += remaining
		if remaining >= constants.UnderutilizedThreshold {
			underutilized = append(underutilized, EngineerCapacity{Name: eng.Name, Capacity: remaining})
		}
	}

	return capacityAvailable, underutilized, nil
}
