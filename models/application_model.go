package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationAccepted ApplicationStatus = "Accepted"
	ApplicationRejected ApplicationStatus = "Rejected"
)

type Application struct {
	ApplicationID   int64             `gorm:"primaryKey;column:application_id" json:"application_id"`
	StudentID       int64             `gorm:"not null;index" json:"student_id"`
	ProjectID       int64             `gorm:"not null;index" json:"project_id"`
	Status          ApplicationStatus `gorm:"size:20;not null;default:'Pending'" json:"status"`
	ApplicationDate time.Time         `gorm:"type:date" json:"application_date"`
}

func (Application) TableName() string { return "application" }

type PendingApplication struct {
	ApplicationID   int64     `json:"application_id"`
	ApplicantID     int64     `json:"applicant_id"`
	ApplicantName   string    `json:"applicant_name"`
	ApplicantEmail  string    `json:"applicant_email"`
	ApplicationDate time.Time `json:"application_date"`
}
