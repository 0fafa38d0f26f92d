package scoring

import "strings"

const (
	ScoreSameTrait      = 90
	ScoreDifferentTrait = 70
)

type CompatibilityNote struct {
	Score *int   `json:"score"`
	Text  string `json:"text"`
}

// Compatibility compares the two trait labels (zodiac signs) directly, quiz
// answers play no part in it.
func Compatibility(a, b string) CompatibilityNote {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return CompatibilityNote{Text: "Signs were not entered."}
	}
	if a == b {
		score := ScoreSameTrait
		return CompatibilityNote{
			Score: &score,
			Text:  "Same sign: you may understand each other quickly. Character matters too, though.",
		}
	}
	score := ScoreDifferentTrait
	return CompatibilityNote{
		Score: &score,
		Text:  "Compatibility is average to good. What matters most is communication and respect.",
	}
}
