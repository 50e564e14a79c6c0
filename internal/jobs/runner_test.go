package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ischultz503/Survivor/internal/ctxutil"
	"go.uber.org/zap"
)

func TestEvery_RunsUntilCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(ctx, nil)

	var n atomic.Int32
	r.Every(5*time.Millisecond, "test_tick", func(context.Context) error {
		n.Add(1)
		return errors.New("boom")
	})

	deadline := time.Now().Add(2 * time.Second)
	for n.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if n.Load() < 3 {
		t.Fatalf("джоб выполнился %d раз, ожидали >= 3", n.Load())
	}
}

type fakePurger struct{ calls int }

func (p *fakePurger) Purge() int { p.calls++; return 2 }

func TestPurgeCache(t *testing.T) {
	p := &fakePurger{}
	if err := PurgeCache(p, zap.NewNop())(context.Background()); err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Fatalf("Purge вызван %d раз", p.calls)
	}
}

func TestRun_TagsOperation(t *testing.T) {
	r := New(context.Background(), nil)
	var got string
	r.run("db_ping", func(ctx context.Context) error {
		got, _ = ctxutil.Op(ctx)
		return nil
	})
	if got != "job db_ping" {
		t.Fatalf("op = %q, ожидали %q", got, "job db_ping")
	}
}
