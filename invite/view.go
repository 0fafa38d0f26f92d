package invite

import (
	"sevgi/lifecycle"
	"sevgi/models"
	"sevgi/scoring"
)

type Person struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Trait string `json:"zodiac"`
}

// View is what the presentation layer gets back for an invite
type View struct {
	Token         string           `json:"token"`
	Status        lifecycle.Status `json:"status"`
	ShareURL      string           `json:"share_url"`
	Initiator     Person           `json:"initiator"`
	Message       *string          `json:"message,omitempty"`
	Respondent    *Person          `json:"respondent"`
	ResultSummary *string          `json:"result_summary,omitempty"`
	CreatedAt     int64            `json:"created_at"`
	UpdatedAt     int64            `json:"updated_at"`
	OpenedAt      *int64           `json:"opened_at,omitempty"`
	FinishedAt    *int64           `json:"finished_at,omitempty"`
}

type QuestionView struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
}

// Result is empty (nil Profile and Pair) until answers are recorded
type Result struct {
	Invite        View                       `json:"invite"`
	FullSummary   bool                       `json:"full_summary"`
	Profile       *scoring.Profile           `json:"profile"`
	Pair          *scoring.ResultProfile     `json:"pair_profile"`
	Compatibility *scoring.CompatibilityNote `json:"zodiac"`
}

func (r Result) Ready() bool {
	return r.Profile != nil
}

type PaymentView struct {
	ID            uint64                 `json:"id"`
	Provider      models.PaymentProvider `json:"provider"`
	Amount        string                 `json:"amount"`
	Status        models.PaymentStatus   `json:"status"`
	ProviderTxnID string                 `json:"provider_txn_id"`
	Invite        View                   `json:"invite"`
}

func (s *Service) view(i *models.Invite) View {
	v := View{
		Token:  i.Token,
		Status: i.Status,
		Initiator: Person{
			Name:  i.InitiatorName,
			Age:   i.InitiatorAge,
			Trait: i.InitiatorTrait,
		},
		Message:       i.Message,
		ResultSummary: i.ResultSummary,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
		OpenedAt:      i.OpenedAt,
		FinishedAt:    i.FinishedAt,
	}
	if s.opts.BaseURL != "" {
		v.ShareURL = s.opts.BaseURL + "/i/" + i.Token
	}
	if i.HasRespondent() {
		v.Respondent = &Person{Name: *i.RespondentName, Age: *i.RespondentAge, Trait: *i.RespondentTrait}
	}
	return v
}

func questionViews(qs []models.Question) []QuestionView {
	result := make([]QuestionView, 0, len(qs))
	for _, q := range qs {
		result = append(result, QuestionView{ID: q.ID, Text: q.Text, OptionA: q.OptionA, OptionB: q.OptionB})
	}
	return result
}
