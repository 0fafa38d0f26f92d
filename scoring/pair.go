package scoring

import "strings"

type Block struct {
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	Bullets []string `json:"bullets"`
}

// ResultProfile is what the initiator sees on the result page: a gentle
// summary and a block of concrete steps.
type ResultProfile struct {
	Block1 Block `json:"block1"`
	Block2 Block `json:"block2"`
}

type traitPair [2]string

const (
	titleSummary  = "A gentle summary"
	titleGuidance = "Clear guidance for you"
)

var fallbackProfile = ResultProfile{
	Block1: Block{
		Title: titleSummary,
		Text: "There is warm energy in your relationship. Sometimes a person does not say exactly what " +
			"they want, but they may expect you to hold the situation, to make a confident decision.",
		Bullets: []string{
			"They notice small attention and care from you more than you think.",
			"Your strong side is taking initiative and responsibility.",
			"Romance often starts with small gestures, not big gifts.",
		},
	},
	Block2: Block{
		Title: titleGuidance,
		Text: "What you need is the confidence that you are doing it right. Here you lead the moment: " +
			"you keep both the conversation and the mood gentle.",
		Bullets: []string{
			"Today: send one short, sincere message, no long explanations.",
			"Tomorrow: make a small surprise, something personal they like.",
			"Do not pile up questions: instead of \"what do you want?\" gently suggest something yourself.",
			"At the end, close with one sentence: \"Making you happy makes me happy.\"",
		},
	},
}

// keys are lower case, lookups normalise before reading
var pairProfiles = map[traitPair]ResultProfile{
	{"aries", "libra"}: {
		Block1: Block{
			Title: titleSummary,
			Text: "Your romantic initiative is strong. They expect gentle attention and a confident step. " +
				"There is no need for many words, the feeling has to come through.",
			Bullets: []string{
				"They wait for signals that you are thinking of them.",
				"Your role is to keep the mood up.",
			},
		},
		Block2: Block{
			Title: titleGuidance,
			Text: "Sometimes they do not say what they want, yet they expect a decision from you. " +
				"When you decide, they feel safe.",
			Bullets: []string{
				"Step 1: give a warm signal in advance, \"I have a little plan for tonight\".",
				"Step 2: a gift is optional, attention is not; a small treat is enough.",
				"Step 3: \"I am trying to understand you\" works.",
			},
		},
	},
	{"cancer", "pisces"}: {
		Block1: Block{
			Title: titleSummary,
			Text: "Your feelings run deep. That is good, just keep the romance simple and natural. " +
				"They want sincerity, you want a clear path.",
			Bullets: []string{
				"Gentle words work very well between you.",
				"Attention is the biggest gift.",
			},
		},
		Block2: Block{
			Title: titleGuidance,
			Text: "If you lead with gentle leadership, they open up even more. " +
				"Keep the tone soft and the decision clear.",
			Bullets: []string{
				"Today: one warm compliment, about their character rather than looks.",
				"Then: ten minutes together without phones.",
				"Finally: end with \"When I see you happy, I am happy too\".",
			},
		},
	},
	{"aries", "leo"}: {
		Block1: Block{
			Title: titleSummary,
			Text: "Two fire signs: a lot of passion and a lot of pride. They want to feel admired, " +
				"and they like it when you are bold.",
			Bullets: []string{
				"Open admiration means a lot to them.",
				"Shared adventures keep the spark alive.",
			},
		},
		Block2: Block{
			Title: titleGuidance,
			Text: "Avoid competing with each other. Let your energy work for the relationship, " +
				"not against it.",
			Bullets: []string{
				"Today: tell them one thing you are proud of them for.",
				"This week: plan something active together.",
				"In an argument: take the first step towards peace.",
			},
		},
	},
}

func normalizeTrait(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// PairProfile looks up the two-block profile for a pair of trait labels. The
// order does not matter; a pair that is not in the table, including two equal
// labels, gets the fallback profile.
func PairProfile(a, b string) ResultProfile {
	k1, k2 := normalizeTrait(a), normalizeTrait(b)
	if p, ok := pairProfiles[traitPair{k1, k2}]; ok {
		return p.clone()
	}
	if p, ok := pairProfiles[traitPair{k2, k1}]; ok {
		return p.clone()
	}
	return fallbackProfile.clone()
}

// clone keeps callers from mutating the shared tables
func (p ResultProfile) clone() ResultProfile {
	p.Block1.Bullets = append([]string(nil), p.Block1.Bullets...)
	p.Block2.Bullets = append([]string(nil), p.Block2.Bullets...)
	return p
}
