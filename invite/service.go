// Package invite ties the invite lifecycle, the answer ledger, the question
// pool and scoring together. Every operation the presentation layer needs is
// a method on Service.
package invite

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"sevgi/lifecycle"
	"sevgi/models"
	"sevgi/questions"
	"sevgi/store"
	"sevgi/utils"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/shopspring/decimal"
)

const (
	DefaultTokenMaxTries = 8
	// how many times a transition is re-evaluated after losing a race
	maxStaleRetries = 3
)

var DefaultPaymentAmount = decimal.NewFromInt(14999)

type Options struct {
	QuizSize      int
	TokenMaxTries int
	// StableQuiz derives the quiz sample from the invite token, so reloading
	// the quiz page shows the same questions
	StableQuiz    bool
	BaseURL       string // share links are BaseURL + "/i/" + token
	PaymentAmount decimal.Decimal
	Now           func() time.Time
	NewToken      func() string
}

type Service struct {
	store store.Store
	opts  Options
	// serialises mutations of the same invite within this process, an entry
	// lives only while someone holds or waits for it
	locks cmap.ConcurrentMap[string, *tokenLock]
}

type tokenLock struct {
	mu   sync.Mutex
	refs int // guarded by the cmap shard lock
}

func New(s store.Store, opts Options) *Service {
	if opts.QuizSize <= 0 {
		opts.QuizSize = questions.DefaultSize
	}
	if opts.TokenMaxTries <= 0 {
		opts.TokenMaxTries = DefaultTokenMaxTries
	}
	if opts.PaymentAmount.IsZero() {
		opts.PaymentAmount = DefaultPaymentAmount
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewToken == nil {
		opts.NewToken = utils.Rand16BytesToBase62
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Service{
		store: s,
		opts:  opts,
		locks: cmap.New[*tokenLock](),
	}
}

func (s *Service) now() int64 {
	return s.opts.Now().Unix()
}

func (s *Service) lock(token string) func() {
	l := s.locks.Upsert(token, nil, func(exist bool, current, _ *tokenLock) *tokenLock {
		if !exist {
			current = &tokenLock{}
		}
		current.refs++
		return current
	})
	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locks.RemoveCb(token, func(_ string, current *tokenLock, exists bool) bool {
			if !exists {
				return false
			}
			current.refs--
			return current.refs == 0
		})
	}
}

func (s *Service) load(ctx context.Context, st store.Store, token string) (*models.Invite, error) {
	invite, err := st.InviteByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return invite, err
}

// mutate runs fn in one transaction while holding the token lock. The
// invite row stays locked until the transaction ends, which keeps other
// processes out as well.
func (s *Service) mutate(ctx context.Context, token string, fn func(tx store.Store, invite *models.Invite) error) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrNotFound
	}
	unlock := s.lock(token)
	defer unlock()
	return s.store.Transaction(ctx, func(tx store.Store) error {
		invite, err := tx.LockInvite(ctx, token)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(tx, invite)
	})
}

// apply moves invite through action and writes the result together with
// extra. The write only lands if the stored status is still the one the
// decision was made on; otherwise the invite is reloaded and the decision
// is made again.
func (s *Service) apply(ctx context.Context, tx store.Store, invite *models.Invite, action lifecycle.Action, extra map[string]interface{}) (*models.Invite, error) {
	for attempt := 0; attempt < maxStaleRetries; attempt++ {
		next, err := lifecycle.Next(invite.Status, action)
		if err != nil {
			return invite, err
		}
		if action == lifecycle.ActionOpen && next == invite.Status {
			return invite, nil
		}
		now := lifecycle.Stamp(invite.UpdatedAt, s.now())
		changes := map[string]interface{}{
			"status":     next,
			"updated_at": now,
		}
		if lifecycle.StampsOpened(next, invite.OpenedAt) {
			changes["opened_at"] = now
		}
		if next == lifecycle.StatusFinished {
			changes["finished_at"] = now
		}
		for k, v := range extra {
			changes[k] = v
		}
		err = tx.UpdateInvite(ctx, invite.ID, invite.Status, changes)
		if err != nil && !errors.Is(err, store.ErrStale) {
			return invite, err
		}
		stale := err != nil
		if invite, err = tx.LockInvite(ctx, invite.Token); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if !stale {
			return invite, nil
		}
	}
	return invite, ErrConflict
}

// CreateInvite validates the initiator profile and stores a new invite
// under a fresh token.
func (s *Service) CreateInvite(ctx context.Context, p InitiatorProfile) (View, error) {
	p, err := p.normalize()
	if err != nil {
		return View{}, err
	}
	for attempt := 0; attempt < s.opts.TokenMaxTries; attempt++ {
		token := s.opts.NewToken()
		exists, err := s.store.TokenExists(ctx, token)
		if err != nil {
			return View{}, err
		}
		if exists {
			continue
		}
		now := s.now()
		invite := &models.Invite{
			Token:          token,
			Status:         lifecycle.StatusCreated,
			InitiatorName:  p.Name,
			InitiatorAge:   p.Age,
			InitiatorTrait: p.Trait,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if p.Message != "" {
			invite.Message = &p.Message
		}
		err = s.store.CreateInvite(ctx, invite)
		if err == nil {
			utils.Logger.WithField("invite", invite.ID).Info("invite created")
			return s.view(invite), nil
		}
		// the unique index caught a token taken after the check
		if taken, checkErr := s.store.TokenExists(ctx, token); checkErr == nil && taken {
			continue
		}
		return View{}, err
	}
	utils.Logger.WithField("tries", s.opts.TokenMaxTries).Error("invite token generation exhausted")
	return View{}, ErrTokenGenerationFailed
}

func (s *Service) GetInvite(ctx context.Context, token string) (View, error) {
	invite, err := s.load(ctx, s.store, token)
	if err != nil {
		return View{}, err
	}
	return s.view(invite), nil
}

// OpenInvite records that the respondent opened the link. Opening twice
// changes nothing.
func (s *Service) OpenInvite(ctx context.Context, token string) (View, error) {
	var result *models.Invite
	err := s.mutate(ctx, token, func(tx store.Store, invite *models.Invite) (err error) {
		result, err = s.apply(ctx, tx, invite, lifecycle.ActionOpen, nil)
		return err
	})
	if err != nil {
		return View{}, err
	}
	return s.view(result), nil
}

// SubmitRespondentProfile stores who is answering. Submitting again
// replaces the stored profile.
func (s *Service) SubmitRespondentProfile(ctx context.Context, token string, p Profile) (View, error) {
	p, err := p.normalize()
	if err != nil {
		return View{}, err
	}
	var result *models.Invite
	err = s.mutate(ctx, token, func(tx store.Store, invite *models.Invite) (err error) {
		result, err = s.apply(ctx, tx, invite, lifecycle.ActionSetRespondent, map[string]interface{}{
			"respondent_name":  p.Name,
			"respondent_age":   p.Age,
			"respondent_trait": p.Trait,
		})
		return err
	})
	if err != nil {
		return View{}, err
	}
	return s.view(result), nil
}

func (s *Service) DeleteInvite(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	var id uint64
	err := s.mutate(ctx, token, func(tx store.Store, invite *models.Invite) error {
		id = invite.ID
		if err := tx.DeleteInvite(ctx, invite.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	if err == nil {
		utils.Logger.WithField("invite", id).Info("invite deleted")
	}
	return err
}
