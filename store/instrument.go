package store

import (
	"context"
	"errors"
	"time"

	"sevgi/lifecycle"
	"sevgi/metrics"
	"sevgi/models"

	"github.com/prometheus/client_golang/prometheus"
)

type instrumentStore struct {
	key  *metrics.Key
	name string
	next Store
}

// Instrument observes every Store operation and reports it through key.
// ErrNotFound and ErrStale are expected outcomes and are not counted as
// errors.
func Instrument(next Store, name string, key *metrics.Key) Store {
	return &instrumentStore{key: key, name: name, next: next}
}

func (s *instrumentStore) track(method string, begin time.Time, err error) {
	labels := prometheus.Labels{
		metrics.FieldMethod: method,
		metrics.FieldStore:  s.name,
	}
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrStale) {
		s.key.ErrCount.With(labels).Inc()
	}
	s.key.OpCount.With(labels).Inc()
	s.key.OpLatency.With(labels).Observe(time.Since(begin).Seconds())
}

func (s *instrumentStore) CreateInvite(ctx context.Context, invite *models.Invite) (err error) {
	defer func(begin time.Time) { s.track("CreateInvite", begin, err) }(time.Now())
	return s.next.CreateInvite(ctx, invite)
}

func (s *instrumentStore) InviteByToken(ctx context.Context, token string) (invite *models.Invite, err error) {
	defer func(begin time.Time) { s.track("InviteByToken", begin, err) }(time.Now())
	return s.next.InviteByToken(ctx, token)
}

func (s *instrumentStore) InviteByID(ctx context.Context, id uint64) (invite *models.Invite, err error) {
	defer func(begin time.Time) { s.track("InviteByID", begin, err) }(time.Now())
	return s.next.InviteByID(ctx, id)
}

func (s *instrumentStore) LockInvite(ctx context.Context, token string) (invite *models.Invite, err error) {
	defer func(begin time.Time) { s.track("LockInvite", begin, err) }(time.Now())
	return s.next.LockInvite(ctx, token)
}

func (s *instrumentStore) TokenExists(ctx context.Context, token string) (exists bool, err error) {
	defer func(begin time.Time) { s.track("TokenExists", begin, err) }(time.Now())
	return s.next.TokenExists(ctx, token)
}

func (s *instrumentStore) UpdateInvite(ctx context.Context, id uint64, from lifecycle.Status, changes map[string]interface{}) (err error) {
	defer func(begin time.Time) { s.track("UpdateInvite", begin, err) }(time.Now())
	return s.next.UpdateInvite(ctx, id, from, changes)
}

func (s *instrumentStore) DeleteInvite(ctx context.Context, id uint64) (err error) {
	defer func(begin time.Time) { s.track("DeleteInvite", begin, err) }(time.Now())
	return s.next.DeleteInvite(ctx, id)
}

func (s *instrumentStore) SaveAnswers(ctx context.Context, inviteID uint64, choices map[uint64]models.Choice) (n int, err error) {
	defer func(begin time.Time) { s.track("SaveAnswers", begin, err) }(time.Now())
	return s.next.SaveAnswers(ctx, inviteID, choices)
}

func (s *instrumentStore) Answers(ctx context.Context, inviteID uint64) (answers []models.Answer, err error) {
	defer func(begin time.Time) { s.track("Answers", begin, err) }(time.Now())
	return s.next.Answers(ctx, inviteID)
}

func (s *instrumentStore) SampleActiveQuestions(ctx context.Context, n int) (qs []models.Question, err error) {
	defer func(begin time.Time) { s.track("SampleActiveQuestions", begin, err) }(time.Now())
	return s.next.SampleActiveQuestions(ctx, n)
}

func (s *instrumentStore) ActiveQuestions(ctx context.Context) (qs []models.Question, err error) {
	defer func(begin time.Time) { s.track("ActiveQuestions", begin, err) }(time.Now())
	return s.next.ActiveQuestions(ctx)
}

func (s *instrumentStore) SeedQuestions(ctx context.Context, questions []models.Question) (n int, err error) {
	defer func(begin time.Time) { s.track("SeedQuestions", begin, err) }(time.Now())
	return s.next.SeedQuestions(ctx, questions)
}

func (s *instrumentStore) SetQuestionActive(ctx context.Context, id uint64, active bool) (err error) {
	defer func(begin time.Time) { s.track("SetQuestionActive", begin, err) }(time.Now())
	return s.next.SetQuestionActive(ctx, id, active)
}

func (s *instrumentStore) CreatePayment(ctx context.Context, payment *models.Payment) (err error) {
	defer func(begin time.Time) { s.track("CreatePayment", begin, err) }(time.Now())
	return s.next.CreatePayment(ctx, payment)
}

func (s *instrumentStore) UpdatePayment(ctx context.Context, payment *models.Payment) (err error) {
	defer func(begin time.Time) { s.track("UpdatePayment", begin, err) }(time.Now())
	return s.next.UpdatePayment(ctx, payment)
}

// Transaction instruments the transaction as a whole and every call made
// through the transactional Store.
func (s *instrumentStore) Transaction(ctx context.Context, fn func(Store) error) (err error) {
	defer func(begin time.Time) { s.track("Transaction", begin, err) }(time.Now())
	return s.next.Transaction(ctx, func(tx Store) error {
		return fn(&instrumentStore{key: s.key, name: s.name, next: tx})
	})
}
