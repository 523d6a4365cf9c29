package models

type Student struct {
	StudentID   int64   `gorm:"primaryKey;column:student_id" json:"student_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Email       string  `gorm:"size:100;not null;unique" json:"email"`
	Password    string  `gorm:"size:255;not null" json:"-"`
	PhoneNumber *string `gorm:"size:20" json:"phone_number"`
	Department  string  `gorm:"size:50" json:"department"`
	YearOfStudy int     `gorm:"column:year_of_study" json:"year_of_study"`
}

func (Student) TableName() string { return "student" }
