package questions

import "sevgi/models"

var bank = []models.Question{
	{Text: "What does the person you love value more?", OptionA: "Warm words, tenderness and attention", OptionB: "Practical help and support through actions", Tag: "care"},
	{Text: "When they are upset, what do they expect from you most?", OptionA: "To be listened to and understood", OptionB: "To have the problem solved quickly", Tag: "support"},
	{Text: "Which gift is closer to their heart?", OptionA: "Small but sincere", OptionB: "Big and impressive", Tag: "romance"},
	{Text: "How do they like to spend time together?", OptionA: "Walking, being outside", OptionB: "A quiet evening at home", Tag: "time"},
	{Text: "What do they want in a disagreement?", OptionA: "A calm and respectful talk", OptionB: "A quick solution and peace", Tag: "communication"},
	{Text: "Which one feels more like love to them?", OptionA: "Time together and attention", OptionB: "Stability and trust", Tag: "love_language"},
	{Text: "If you plan a surprise, which would they enjoy more?", OptionA: "A small unexpected gesture", OptionB: "A big surprise planned in advance", Tag: "romance"},
	{Text: "When you talk, what do they notice more?", OptionA: "Your tone and mood", OptionB: "What you actually say", Tag: "communication"},
	{Text: "What makes them feel cared for during a busy week?", OptionA: "A kind message in the middle of the day", OptionB: "You taking a task off their hands", Tag: "attention"},
	{Text: "What keeps their trust strongest?", OptionA: "Being open about how you feel", OptionB: "Always doing what you promised", Tag: "trust"},
	{Text: "After a long day, what do they prefer?", OptionA: "Sharing the day with you", OptionB: "Some time alone first", Tag: "space"},
	{Text: "How should you remember a special date?", OptionA: "A heartfelt note", OptionB: "A well organised plan for the day", Tag: "attention"},
	{Text: "What reassures them when you are apart?", OptionA: "Hearing that you miss them", OptionB: "Knowing your plans and when you will be back", Tag: "trust"},
	{Text: "What do they value in everyday life together?", OptionA: "Little signs of affection", OptionB: "A steady routine they can rely on", Tag: "care"},
}

// Bank returns a copy of the built-in question bank used for seeding
func Bank() []models.Question {
	result := make([]models.Question, len(bank))
	for i, q := range bank {
		q.AScore = 1
		q.BScore = 1
		q.IsActive = true
		result[i] = q
	}
	return result
}
