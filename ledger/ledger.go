// Package ledger records the respondent's choices: exactly one per
// (invite, question). Malformed entries are dropped rather than rejected, so a
// partly broken submission still keeps its valid answers.
package ledger

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"sevgi/models"
)

const formPrefix = "q_"

// Writer is the part of the store the ledger needs
type Writer interface {
	SaveAnswers(ctx context.Context, inviteID uint64, choices map[uint64]models.Choice) (int, error)
	Answers(ctx context.Context, inviteID uint64) ([]models.Answer, error)
}

// ParseChoice accepts a/A/b/B with surrounding spaces
func ParseChoice(raw string) (models.Choice, bool) {
	c := models.Choice(strings.ToUpper(strings.TrimSpace(raw)))
	return c, c.Valid()
}

// Normalize keeps only entries with a valid choice
func Normalize(raw map[uint64]string) map[uint64]models.Choice {
	result := make(map[uint64]models.Choice, len(raw))
	for id, value := range raw {
		if id == 0 {
			continue
		}
		if c, ok := ParseChoice(value); ok {
			result[id] = c
		}
	}
	return result
}

// ParseForm reads q_<question id>=A|B fields, everything else is ignored
func ParseForm(form url.Values) map[uint64]string {
	result := map[uint64]string{}
	for key, values := range form {
		if !strings.HasPrefix(key, formPrefix) || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSpace(strings.TrimPrefix(key, formPrefix)), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		result[id] = values[0]
	}
	return result
}

// ParseKeys converts string question ids (JSON object keys) the same way
func ParseKeys(raw map[string]string) map[uint64]string {
	result := map[uint64]string{}
	for key, value := range raw {
		id, err := strconv.ParseUint(strings.TrimSpace(strings.TrimPrefix(key, formPrefix)), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		result[id] = value
	}
	return result
}

type Ledger struct {
	w Writer
}

func New(w Writer) *Ledger {
	return &Ledger{w: w}
}

// Record upserts the choices for one invite and returns how many were kept
func (l *Ledger) Record(ctx context.Context, inviteID uint64, choices map[uint64]models.Choice) (int, error) {
	if len(choices) == 0 {
		return 0, nil
	}
	return l.w.SaveAnswers(ctx, inviteID, choices)
}

// Choices returns the recorded letters in the order they were first
// recorded, the scoring input
func (l *Ledger) Choices(ctx context.Context, inviteID uint64) ([]models.Choice, error) {
	answers, err := l.w.Answers(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	result := make([]models.Choice, 0, len(answers))
	for _, a := range answers {
		result = append(result, a.Choice)
	}
	return result, nil
}
