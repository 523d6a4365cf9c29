package models

type Review struct {
	ReviewID   int64  `gorm:"primaryKey;column:review_id"`
	ContractID int64  `gorm:"not null;unique"`
	StudentID  int64  `gorm:"not null;index"`
	ReviewerID int64  `gorm:"not null"`
	Rating     int    `gorm:"not null"`
	ReviewText string `gorm:"type:text"`
}

func (Review) TableName() string { return "review" }

type ReviewStats struct {
	Avg   float64 `json:"avg"`
	Count int64   `json:"count"`
}

type ReviewEntry struct {
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	ProjectTitle string `json:"project_title"`
}
