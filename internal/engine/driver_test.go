package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// scriptedProvider отвечает Wait на каждый запрос, пока не отменен ctx.
func scriptedProvider(ctx context.Context, p Provider) {
	for {
		select {
		case req := <-p.Requests:
			select {
			case p.Replies <- Reply{ID: req.ID, Action: domain.Wait()}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func TestDriverStopsOnContextCancel(t *testing.T) {
	inst := newArenaInstance(t, 6)
	spawnPlayerAt(t, inst, domain.RaceHuman, hex.NewPosition(hex.Origin, hex.East))

	playerP, aiP := NewProvider(), NewProvider()
	ctx, cancel := context.WithCancel(context.Background())
	go scriptedProvider(ctx, playerP)
	go scriptedProvider(ctx, aiP)

	done := make(chan error, 1)
	go func() { done <- NewDriver(inst, playerP, aiP).Run(ctx) }()

	// Даем драйверу прокрутить хотя бы несколько тиков.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run must return the context error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancel")
	}

	if inst.Loc.Turn == 0 {
		t.Error("Driver must have completed at least one tick before cancel")
	}
}

func TestDriverStopsWhenPlayerMissing(t *testing.T) {
	inst := newArenaInstance(t, 6)

	playerP, aiP := NewProvider(), NewProvider()
	if err := NewDriver(inst, playerP, aiP).Run(context.Background()); err != nil {
		t.Errorf("Run without a player must end cleanly, got %v", err)
	}
}

func TestDriverFatalOnClosedReplies(t *testing.T) {
	inst := newArenaInstance(t, 6)
	spawnPlayerAt(t, inst, domain.RaceHuman, hex.NewPosition(hex.Origin, hex.East))

	playerP, aiP := NewProvider(), NewProvider()
	go func() {
		<-playerP.Requests
		close(playerP.Replies)
	}()

	err := NewDriver(inst, playerP, aiP).Run(context.Background())
	if err == nil {
		t.Fatal("Closed reply channel must be fatal")
	}
	if !strings.Contains(err.Error(), "decision channel closed") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestDriverFatalOnWrongReplyID(t *testing.T) {
	inst := newArenaInstance(t, 6)
	spawnPlayerAt(t, inst, domain.RaceHuman, hex.NewPosition(hex.Origin, hex.East))

	playerP, aiP := NewProvider(), NewProvider()
	go func() {
		req := <-playerP.Requests
		playerP.Replies <- Reply{ID: req.ID + 1, Action: domain.Wait()}
	}()

	if err := NewDriver(inst, playerP, aiP).Run(context.Background()); err == nil {
		t.Fatal("Mismatched reply ID must be fatal")
	}
}
