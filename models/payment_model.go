package models

import "time"

const PaymentPaid = "Paid"

type Payment struct {
	PaymentID     int64     `gorm:"primaryKey;column:payment_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null"`
	PaymentDate   time.Time `gorm:"type:date;not null"`
	Status        string    `gorm:"size:20;not null"`
	PaymentMethod string    `gorm:"size:50"`
	ContractID    int64     `gorm:"not null;index"`
}

func (Payment) TableName() string { return "payment" }

// Receipt is what gets rendered into the payment receipt PDF.
type Receipt struct {
	ContractID     int64
	ProjectTitle   string
	PayerName      string
	FreelancerName string
	Amount         float64
	Method         string
	IssuedAt       time.Time
}
