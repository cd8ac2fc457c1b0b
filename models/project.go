package models

import "time"

type Project struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"uniqueIndex" json:"name"`
	Description    string     `json:"description"`
	RequiredSkills string     `json:"requiredSkills,omitempty"`
	TeamSize       int        `json:"teamSize,omitempty"`
	Status         string     `json:"status,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	IsClosed       bool       `gorm:"default:false" json:"isClosed"`
	CreatedByID    uint       `json:"createdById"`
	ManagerID      uint       `json:"managerId"`
	CreatedAt      time.Time  `json:"createdAt"`

	CreatedBy   *User        `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Tasks       []Task       `json:"tasks,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
}
