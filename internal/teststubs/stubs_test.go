package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/providers"
)

func TestStubProviderTracksCallsAndModes(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{
		PlayByPlay:       &domain.PlayByPlay{GameID: "g1"},
		CachedPlayByPlay: nil,
		ScoreboardErr:    err,
	}

	if _, got := p.FetchScoreboard(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.ScoreboardCalls.Load() != 1 {
		t.Fatalf("expected 1 scoreboard call, got %d", p.ScoreboardCalls.Load())
	}

	pbp, _ := p.FetchPlayByPlay(context.Background(), "g1", providers.FetchCacheOnly)
	if pbp != nil {
		t.Fatalf("cache-only with nil cached value must miss, got %+v", pbp)
	}
	pbp, _ = p.FetchPlayByPlay(context.Background(), "g1", providers.FetchForce)
	if pbp == nil || pbp.GameID != "g1" {
		t.Fatalf("forced fetch broken: %+v", pbp)
	}

	modes := p.Modes()
	if len(modes) != 2 || modes[0] != providers.FetchCacheOnly || modes[1] != providers.FetchForce {
		t.Fatalf("modes = %v", modes)
	}
}

func TestStubStore(t *testing.T) {
	s := NewStubStore()
	if err := s.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := s.Get(context.Background(), "k")
	if err != nil || !ok || string(value) != "v" {
		t.Fatalf("Get = %q ok=%v err=%v", value, ok, err)
	}
	if s.TTLs["k"] != time.Minute {
		t.Fatalf("ttl not recorded: %v", s.TTLs["k"])
	}

	s.GetErr = errors.New("boom")
	if _, _, err := s.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected injected error")
	}
}
