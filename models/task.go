package models

import "time"

type Task struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ProjectID           uint      `json:"projectId"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Status              string    `gorm:"default:'PENDING'" json:"status"`
	Priority            string    `gorm:"default:'MEDIUM'" json:"priority"`
	CompletionRequested bool      `gorm:"default:false" json:"completionRequested"`
	AssignedToID        *uint     `json:"assignedToId"`
	CreatedAt           time.Time `json:"createdAt"`

	AssignedTo *User         `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	Project    *Project      `json:"project,omitempty"`
	Comments   []TaskComment `json:"comments,omitempty"`
}
