package models

// Question is a bank entry with two options. Only IsActive changes after
// creation, retired questions stay for the answers that reference them.
type Question struct {
	ID        uint64 `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	OptionA   string `gorm:"type:varchar(255);not null"`
	OptionB   string `gorm:"type:varchar(255);not null"`
	Tag       string `gorm:"type:varchar(40);not null;index"` // attention, trust, romance, space, care
	AScore    int    `gorm:"not null;default:1"`
	BScore    int    `gorm:"not null;default:1"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64
}
