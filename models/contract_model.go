package models

import "time"

type Contract struct {
	ContractID int64      `gorm:"primaryKey;column:contract_id" json:"contract_id"`
	ProjectID  int64      `gorm:"not null;index" json:"project_id"`
	StudentID  int64      `gorm:"not null;index" json:"student_id"`
	StartDate  time.Time  `gorm:"type:date" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date"`
}

func (Contract) TableName() string { return "contract" }

// FreelanceContract is an active contract where the student does the work.
type FreelanceContract struct {
	ContractID       int64      `json:"contract_id"`
	ProjectTitle     string     `json:"project_title"`
	ProjectOwnerName string     `json:"project_owner_name"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

// OwnerContract is an active contract on a project the student owns.
type OwnerContract struct {
	ContractID      int64      `json:"contract_id"`
	ProjectTitle    string     `json:"project_title"`
	FreelancerID    int64      `json:"freelancer_id"`
	FreelancerName  string     `json:"freelancer_name"`
	FreelancerEmail string     `json:"freelancer_email"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
}
