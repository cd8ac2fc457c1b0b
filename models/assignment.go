package models

import "time"

type Assignment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `json:"userId"`
	ProjectID  uint       `json:"projectId"`
	TaskID     *uint      `json:"taskId"`
	Allocation int        `json:"allocation"`
	Role       string     `json:"role,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`

	User    *User    `json:"user,omitempty"`
	Project *Project `json:"project,omitempty"`
	Task    *Task    `json:"task,omitempty"`
}

// AssignmentBackup is a verbatim snapshot of an Assignment row, written when
// a project closes and consumed when it reopens. Snapshots carry the
// original field values; only the primary key is new on restore.
type AssignmentBackup struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `json:"userId"`
	ProjectID  uint       `json:"projectId"`
	TaskID     *uint      `json:"taskId"`
	Allocation int        `json:"allocation"`
	Role       string     `json:"role,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
