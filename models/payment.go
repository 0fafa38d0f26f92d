package models

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentCreated PaymentStatus = "created"
	PaymentPaid    PaymentStatus = "paid"
)

type PaymentProvider string

const (
	ProviderDemo PaymentProvider = "demo"
)

type Payment struct {
	ID            uint64          `gorm:"primaryKey"`
	InviteID      uint64          `gorm:"not null;index"`
	Provider      PaymentProvider `gorm:"type:varchar(16);not null;default:demo"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        PaymentStatus   `gorm:"type:varchar(16);not null;default:created"`
	ProviderTxnID *string         `gorm:"type:varchar(120)"`
	CreatedAt     int64
	PaidAt        *int64
}
