package invite

import (
	"strings"
	"unicode/utf8"
)

const (
	minNameLen    = 2
	maxNameLen    = 80
	minAge        = 14
	maxAge        = 99
	minTraitLen   = 2
	maxTraitLen   = 30
	maxMessageLen = 500
)

// Profile describes one party. Trait is the zodiac sign, any label works.
type Profile struct {
	Name  string
	Age   int
	Trait string
}

type InitiatorProfile struct {
	Profile
	Message string // optional note for the respondent
}

func (p Profile) normalize() (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Trait = strings.TrimSpace(p.Trait)
	if n := utf8.RuneCountInString(p.Name); n < minNameLen || n > maxNameLen {
		return p, invalid("name must be %d-%d characters", minNameLen, maxNameLen)
	}
	if p.Age < minAge || p.Age > maxAge {
		return p, invalid("age must be between %d and %d", minAge, maxAge)
	}
	if n := utf8.RuneCountInString(p.Trait); n < minTraitLen || n > maxTraitLen {
		return p, invalid("zodiac must be %d-%d characters", minTraitLen, maxTraitLen)
	}
	return p, nil
}

func (p InitiatorProfile) normalize() (InitiatorProfile, error) {
	var err error
	if p.Profile, err = p.Profile.normalize(); err != nil {
		return p, err
	}
	p.Message = strings.TrimSpace(p.Message)
	if utf8.RuneCountInString(p.Message) > maxMessageLen {
		return p, invalid("message must be at most %d characters", maxMessageLen)
	}
	return p, nil
}
