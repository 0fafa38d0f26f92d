// Package scoring turns the respondent's A/B choices into a profile. It only
// looks at the tally, never at which question produced which letter.
package scoring

import "sevgi/models"

const (
	KeyEmotion   = "emotion"   // A majority or tie
	KeyAttention = "attention" // B majority: stability, everyday care
)

type Profile struct {
	Key     string   `json:"key"`
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
	Tip     string   `json:"tip"`
}

var bundles = map[string]Profile{
	KeyEmotion: {
		Key: KeyEmotion,
		Summary: "It looks like in this relationship they want to feel warm words, sincere attention " +
			"and emotional closeness more often.",
		Bullets: []string{
			"Simple but sincere words can mean a lot to them",
			"Attention may matter more than gifts",
			"They open up when they feel truly listened to",
		},
		Tip: "A small tip: from time to time, tell them openly how you feel.",
	},
	KeyAttention: {
		Key: KeyAttention,
		Summary: "It looks like in this relationship they value stability, practical care " +
			"and small everyday signs of attention.",
		Bullets: []string{
			"Consistency and trust are important to them",
			"Time spent together is the main signal",
			"Care shown through actions feels close to them",
		},
		Tip: "A small tip: small things done in practice may speak louder than promises.",
	},
}

// Tally counts each letter, anything else is ignored
func Tally(choices []models.Choice) (a, b int) {
	for _, c := range choices {
		switch c {
		case models.ChoiceA:
			a++
		case models.ChoiceB:
			b++
		}
	}
	return a, b
}

// Category applies the tie-break: A >= B is emotion
func Category(choices []models.Choice) string {
	a, b := Tally(choices)
	if a >= b {
		return KeyEmotion
	}
	return KeyAttention
}

// Build returns the bundle for the dominant category. Same multiset of
// choices, same result. Empty input resolves to emotion (0 >= 0); callers
// treat "no answers" as "no result" and do not call it.
func Build(choices []models.Choice) Profile {
	p := bundles[Category(choices)]
	p.Bullets = append([]string(nil), p.Bullets...)
	return p
}
