package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	Password     string `json:"-"`
	Role         string `json:"role"`
	IsSuperAdmin bool   `gorm:"default:false" json:"isSuperAdmin"`

	// ManagerID records the promoter: the manager who last changed this
	// user's role. Null means nobody has; the super-admin never has one.
	ManagerID *uint `json:"managerId"`

	Skills      string `json:"skills,omitempty"`
	Department  string `json:"department,omitempty"`
	MaxCapacity int    `gorm:"default:100" json:"maxCapacity"`

	ProjectsAssigned int    `gorm:"default:0" json:"projectsAssigned"`
	TasksCompleted   int    `gorm:"default:0" json:"tasksCompleted"`
	Performance      string `json:"performance,omitempty"`

	Phone          string `json:"phone,omitempty"`
	Bio            string `json:"bio,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
	Country        string `json:"country,omitempty"`
	City           string `json:"city,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	TaxID          string `json:"taxId,omitempty"`
	Certifications string `json:"certifications,omitempty"`
	Experience     string `json:"experience,omitempty"`

	LastLogin          *time.Time `json:"lastLogin,omitempty"`
	LastPasswordChange *time.Time `json:"lastPasswordChange,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}
