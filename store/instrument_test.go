package store

import (
	"context"
	"errors"
	"testing"

	"sevgi/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	key, err := metrics.KeyMetrics(reg, "test_store", metrics.FieldMethod, metrics.FieldStore)
	if err != nil {
		t.Fatal(err)
	}
	g := newTestStore(t)
	s := Instrument(g, "sqlite", key)
	invite := newInvite(t, g, "tok")

	if _, err = s.InviteByToken(ctx, "tok"); err != nil {
		t.Fatal(err)
	}
	if _, err = s.InviteByToken(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("InviteByToken(missing) error = %v", err)
	}
	err = s.Transaction(ctx, func(tx Store) error {
		_, err := tx.InviteByID(ctx, invite.ID)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(key.OpCount.WithLabelValues("InviteByToken", "sqlite")); got != 2 {
		t.Errorf("InviteByToken op count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(key.ErrCount.WithLabelValues("InviteByToken", "sqlite")); got != 0 {
		t.Errorf("not found was counted as an error: %v", got)
	}
	if got := testutil.ToFloat64(key.OpCount.WithLabelValues("InviteByID", "sqlite")); got != 1 {
		t.Errorf("calls inside the transaction are not instrumented: %v", got)
	}
	if got := testutil.ToFloat64(key.OpCount.WithLabelValues("Transaction", "sqlite")); got != 1 {
		t.Errorf("Transaction op count = %v, want 1", got)
	}
}
