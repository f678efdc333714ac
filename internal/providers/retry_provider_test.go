package providers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/providers"
	"nba-worm-tracker/internal/teststubs"
)

type flakyProvider struct {
	teststubs.StubProvider
	failures int
	calls    int
}

func (f *flakyProvider) FetchScoreboard(ctx context.Context) (domain.Scoreboard, error) {
	f.calls++
	if f.calls <= f.failures {
		return domain.Scoreboard{}, errors.New("transient")
	}
	return domain.Scoreboard{GameDate: "2025-11-19"}, nil
}

func TestRetryingProviderRecoversFromTransientFailure(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	provider := providers.NewRetryingProvider(inner, nil, 3, time.Millisecond)

	board, err := provider.FetchScoreboard(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if board.GameDate != "2025-11-19" {
		t.Fatalf("unexpected scoreboard: %+v", board)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := providers.NewRetryingProvider(inner, nil, 2, time.Millisecond)

	if _, err := provider.FetchScoreboard(context.Background()); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderHonorsContextCancel(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := providers.NewRetryingProvider(inner, nil, 5, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := provider.FetchScoreboard(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetryingProviderPassesThroughSubResources(t *testing.T) {
	stub := &teststubs.StubProvider{
		PlayByPlay: &domain.PlayByPlay{GameID: "g1"},
	}
	provider := providers.NewRetryingProvider(stub, nil, 3, time.Millisecond)

	pbp, err := provider.FetchPlayByPlay(context.Background(), "g1", providers.FetchForce)
	if err != nil || pbp == nil || pbp.GameID != "g1" {
		t.Fatalf("pass-through failed: %+v %v", pbp, err)
	}
	if stub.PlayByPlayCalls.Load() != 1 {
		t.Fatalf("sub-resource must not retry, got %d calls", stub.PlayByPlayCalls.Load())
	}
}
