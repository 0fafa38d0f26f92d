package models

import (
	"sevgi/lifecycle"
)

// Invite is the central record: the initiator creates it, the respondent
// answers through its token link, the result is shown back to the initiator.
type Invite struct {
	ID     uint64           `gorm:"primaryKey"`
	Token  string           `gorm:"type:varchar(80);index:uniq_invite_token,unique;not null"`
	Status lifecycle.Status `gorm:"type:varchar(16);not null;default:created"`

	InitiatorName  string  `gorm:"type:varchar(80);not null"`
	InitiatorAge   int     `gorm:"not null"`
	InitiatorTrait string  `gorm:"type:varchar(30);not null"` // zodiac sign
	Message        *string `gorm:"type:text"`

	// Either all nil or all set
	RespondentName  *string `gorm:"type:varchar(80)"`
	RespondentAge   *int
	RespondentTrait *string `gorm:"type:varchar(30)"`

	ResultSummary *string `gorm:"type:text"`
	ZodiacScore   *int    // never populated, kept for schema compatibility

	CreatedAt  int64 `gorm:"autoCreateTime:false;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:false;not null"`
	OpenedAt   *int64
	FinishedAt *int64

	Answers  []Answer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (i *Invite) HasRespondent() bool {
	return i.RespondentName != nil && i.RespondentAge != nil && i.RespondentTrait != nil
}

// RespondentTraitOrEmpty is handy for the trait-pair lookups
func (i *Invite) RespondentTraitOrEmpty() string {
	if i.RespondentTrait == nil {
		return ""
	}
	return *i.RespondentTrait
}
