package invite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"sevgi/db"
	"sevgi/lifecycle"
	"sevgi/models"
	"sevgi/questions"
	"sevgi/store"
	"sevgi/utils"

	"github.com/sirupsen/logrus"
)

// newFileService runs on a SQLite file opened the way the server opens it
func newFileService(t *testing.T) *Service {
	t.Helper()
	gdb, err := db.Open("", filepath.Join(t.TempDir(), "sevgi.sqlite"), false)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err = models.Init(gdb); err != nil {
		t.Fatal(err)
	}
	s := store.New(gdb)
	if _, err = s.SeedQuestions(context.Background(), questions.Bank()); err != nil {
		t.Fatal(err)
	}
	return New(s, Options{})
}

func TestService_IndependentInvitesConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := newFileService(t)
	qs, err := svc.GetQuizQuestions(ctx)
	if err != nil {
		t.Fatal(err)
	}

	const n = 16
	tokens := make([]string, n)
	for i := range tokens {
		v, err := svc.CreateInvite(ctx, aziz)
		if err != nil {
			t.Fatal(err)
		}
		tokens[i] = v.Token
	}

	var mu sync.Mutex
	failures := map[string]int{}
	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			if _, err := svc.SubmitRespondentProfile(ctx, token, dilnoza); err != nil {
				mu.Lock()
				failures[err.Error()]++
				mu.Unlock()
				return
			}
			if _, err := svc.SubmitQuiz(ctx, token, allAnswers(qs, "A")); err != nil {
				mu.Lock()
				failures[err.Error()]++
				mu.Unlock()
			}
		}(token)
	}
	wg.Wait()
	if len(failures) != 0 {
		t.Fatalf("concurrent submissions on different invites failed: %v", failures)
	}
	for _, token := range tokens {
		v, err := svc.GetInvite(ctx, token)
		if err != nil || v.Status != lifecycle.StatusFinished {
			t.Errorf("invite %s = %v, %v, want finished", token, v.Status, err)
		}
	}
	if n := svc.locks.Count(); n != 0 {
		t.Errorf("%d token locks left after all requests finished", n)
	}
}

func TestService_CreateInvite_TokensUnique(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, Options{})
	level := utils.Logger.GetLevel()
	utils.Logger.SetLevel(logrus.WarnLevel)
	defer utils.Logger.SetLevel(level)
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		v, err := svc.CreateInvite(ctx, aziz)
		if err != nil {
			t.Fatalf("CreateInvite() #%d error = %v", i, err)
		}
		if _, ok := seen[v.Token]; ok {
			t.Fatalf("duplicate token after %d invites: %q", i, v.Token)
		}
		seen[v.Token] = struct{}{}
	}
}

// racingStore lets another writer change an invite between the service
// reading it and writing its transition
type racingStore struct {
	store.Store
	once sync.Once
	race func(ctx context.Context, tx store.Store, id uint64)
}

func (r *racingStore) Transaction(ctx context.Context, fn func(store.Store) error) error {
	return r.Store.Transaction(ctx, func(tx store.Store) error {
		return fn(&racingTx{Store: tx, parent: r})
	})
}

type racingTx struct {
	store.Store
	parent *racingStore
}

func (r *racingTx) UpdateInvite(ctx context.Context, id uint64, from lifecycle.Status, changes map[string]interface{}) error {
	r.parent.once.Do(func() { r.parent.race(ctx, r.Store, id) })
	return r.Store.UpdateInvite(ctx, id, from, changes)
}

func TestService_TransitionRechecksAfterLostRace(t *testing.T) {
	ctx := context.Background()
	plain, s := newTestService(t, Options{})
	v, _ := plain.CreateInvite(ctx, aziz)
	if _, err := plain.OpenInvite(ctx, v.Token); err != nil {
		t.Fatal(err)
	}

	var raceErr error
	racing := &racingStore{Store: s, race: func(ctx context.Context, tx store.Store, id uint64) {
		raceErr = tx.UpdateInvite(ctx, id, lifecycle.StatusOpened, map[string]interface{}{
			"status":         lifecycle.StatusFinished,
			"result_summary": "finished elsewhere",
		})
	}}
	svc := New(racing, Options{})
	qs, _ := svc.GetQuizQuestions(ctx)

	_, err := svc.SubmitQuiz(ctx, v.Token, allAnswers(qs, "B"))
	if raceErr != nil {
		t.Fatal(raceErr)
	}
	if !errors.Is(err, ErrAlreadyFinished) {
		t.Fatalf("SubmitQuiz() after losing the race error = %v, want ErrAlreadyFinished", err)
	}
	res, _ := plain.GetResult(ctx, v.Token)
	if res.Ready() {
		t.Error("answers of the losing submission were kept")
	}
}

func TestService_UpdateMatchingRowIsNotStale(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t, Options{})
	v, _ := svc.CreateInvite(ctx, aziz)
	invite, _ := s.InviteByToken(ctx, v.Token)
	// same values again: the row matches even though nothing changes
	for i := 0; i < 2; i++ {
		err := s.UpdateInvite(ctx, invite.ID, lifecycle.StatusCreated, map[string]interface{}{
			"status":     lifecycle.StatusCreated,
			"updated_at": invite.UpdatedAt,
		})
		if err != nil {
			t.Fatalf("UpdateInvite() #%d error = %v", i, err)
		}
	}
}

func TestService_LocksReleased(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, Options{})
	for i := 0; i < 5; i++ {
		v, _ := svc.CreateInvite(ctx, aziz)
		svc.OpenInvite(ctx, v.Token)
		svc.SubmitRespondentProfile(ctx, v.Token, dilnoza)
		svc.MarkPaid(ctx, v.Token)
		svc.DeleteInvite(ctx, fmt.Sprintf(" %s ", v.Token))
	}
	if n := svc.locks.Count(); n != 0 {
		t.Errorf("%d token locks left, want 0", n)
	}
}
