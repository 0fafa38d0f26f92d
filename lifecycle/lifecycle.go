// Package lifecycle holds the invite state machine. Every rule about which
// action is legal in which status lives in Next, so callers never compare
// statuses on their own.
package lifecycle

import (
	"errors"
)

type Status string

const (
	StatusCreated  Status = "created"  // initiator made the invite
	StatusPaid     Status = "paid"     // optional, demo payment went through
	StatusOpened   Status = "opened"   // respondent opened the link or started answering
	StatusFinished Status = "finished" // answers scored, terminal
)

type Action uint8

const (
	ActionMarkPaid Action = iota + 1
	ActionOpen
	ActionSetRespondent
	ActionRecordAnswers
	ActionFinish
)

var (
	ErrAlreadyFinished   = errors.New("invite already finished")
	ErrInvalidTransition = errors.New("invalid invite status transition")
	ErrUnknownStatus     = errors.New("unknown invite status")
)

var actionNames = map[Action]string{
	ActionMarkPaid:      "mark_paid",
	ActionOpen:          "open",
	ActionSetRespondent: "set_respondent",
	ActionRecordAnswers: "record_answers",
	ActionFinish:        "finish",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (s Status) String() string {
	return string(s)
}

// Next returns the status an invite moves to when action is applied in
// current. A finished invite rejects every action with ErrAlreadyFinished.
func Next(current Status, action Action) (Status, error) {
	switch current {
	case StatusCreated, StatusPaid, StatusOpened:
	case StatusFinished:
		return current, ErrAlreadyFinished
	default:
		return current, ErrUnknownStatus
	}
	switch action {
	case ActionMarkPaid:
		if current != StatusCreated {
			return current, ErrInvalidTransition
		}
		return StatusPaid, nil
	case ActionOpen, ActionSetRespondent, ActionRecordAnswers:
		return StatusOpened, nil
	case ActionFinish:
		return StatusFinished, nil
	}
	return current, ErrInvalidTransition
}

// Changed reports whether applying action in current moves the invite at all.
// Opening an already opened invite is a no-op.
func Changed(current Status, action Action) bool {
	next, err := Next(current, action)
	return err == nil && next != current
}

// StampsOpened is true when moving to `to` should record opened_at.
// openedAt is the currently stored value; it is written only once.
func StampsOpened(to Status, openedAt *int64) bool {
	return openedAt == nil && to == StatusOpened
}

// Stamp keeps timestamps non-decreasing even if the clock steps back
func Stamp(prev, now int64) int64 {
	if now < prev {
		return prev
	}
	return now
}

// CanViewFullSummary is the paywall check: everything past "created" may see
// the full result.
func CanViewFullSummary(s Status) bool {
	return s == StatusPaid || s == StatusOpened || s == StatusFinished
}

// IsTerminal reports whether no further action is accepted
func (s Status) IsTerminal() bool {
	return s == StatusFinished
}
