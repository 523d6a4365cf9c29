package models

import "time"

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "Open"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

type Project struct {
	ProjectID   int64         `gorm:"primaryKey;column:project_id" json:"project_id"`
	StudentID   int64         `gorm:"not null;index" json:"student_id"`
	Title       string        `gorm:"size:200;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Deadline    time.Time     `gorm:"type:date" json:"deadline"`
	Status      ProjectStatus `gorm:"size:20;not null;default:'Open'" json:"status"`

	Owner Student `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
}

func (Project) TableName() string { return "project" }

// ProjectListing is one row of sp_SearchProjects.
type ProjectListing struct {
	ProjectID   int64     `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerName   string    `json:"owner_name"`
	Deadline    time.Time `json:"deadline"`
}

type OwnedProject struct {
	ProjectID   int64         `json:"project_id"`
	Title       string        `json:"title"`
	Status      ProjectStatus `json:"status"`
	PendingApps int64         `json:"pending_apps"`
}

// ProjectDue is an open project whose deadline is approaching, with the
// owner's contact details for reminders.
type ProjectDue struct {
	ProjectID  int64     `json:"project_id"`
	Title      string    `json:"title"`
	Deadline   time.Time `json:"deadline"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
}
