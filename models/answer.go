package models

type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

func (c Choice) Valid() bool {
	return c == ChoiceA || c == ChoiceB
}

// Answer records one choice per (invite, question)
type Answer struct {
	ID         uint64   `gorm:"primaryKey"`
	InviteID   uint64   `gorm:"not null;index:uniq_invite_question,unique,priority:1"`
	QuestionID uint64   `gorm:"not null;index:uniq_invite_question,unique,priority:2"`
	Question   Question `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Choice     Choice   `gorm:"type:varchar(1);not null"`
	CreatedAt  int64
	UpdatedAt  int64
}
