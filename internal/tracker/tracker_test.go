package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/providers"
	"nba-worm-tracker/internal/resolver"
	"nba-worm-tracker/internal/teststubs"
	"nba-worm-tracker/internal/testutil"
)

// eveningOf returns a clock fixed to game night so final games on the
// board are never stale.
var eveningOf = testutil.NowAt(time.Date(2025, 11, 19, 20, 0, 0, 0, time.UTC))

func newTracker(stub *teststubs.StubProvider) *Tracker {
	res := resolver.New(stub, nil, resolver.WithClock(eveningOf))
	return New(res, stub, "GSW", nil, nil, WithClock(eveningOf))
}

func scoringAction(period int, clock, home, away string) domain.GameAction {
	return domain.GameAction{Period: period, Clock: clock, ScoreHome: home, ScoreAway: away, Description: "bucket"}
}

func TestInitialStateIsLoading(t *testing.T) {
	trk := newTracker(&teststubs.StubProvider{})
	assert.Equal(t, domain.KindLoading, trk.State().Kind)
}

func TestResolutionErrorAlwaysSurfaces(t *testing.T) {
	stub := &teststubs.StubProvider{ScoreboardErr: errors.New("upstream down")}
	trk := newTracker(stub)

	// Background poll, no loading flash: the error must still surface.
	trk.fetchCycle(context.Background(), false)

	state := trk.State()
	require.Equal(t, domain.KindError, state.Kind)
	assert.Contains(t, state.Message, "upstream down")
	assert.False(t, trk.IsPolling())
}

func TestNoGameOnBoardShowsNextScheduledGame(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{GameDate: "2025-11-19"},
		Schedule: domain.Schedule{Games: []domain.ScheduledGame{{
			ID:           "next",
			StartTimeUTC: "2025-11-21T02:00:00Z",
			HomeTeam:     domain.ScheduledTeam{Tricode: "GSW"},
			AwayTeam:     domain.ScheduledTeam{Tricode: "SAS"},
		}}},
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindScheduled, state.Kind)
	require.NotNil(t, state.Game)
	assert.Equal(t, "next", state.Game.ID)
	assert.False(t, trk.IsPolling())
}

func TestNoGameAnywhereShowsNoGameToday(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{GameDate: "2025-11-19"},
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindNoGameToday, state.Kind)
	assert.Nil(t, state.NextGame)
}

func TestNextGameFailureStillShowsNoGame(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard:  domain.Scoreboard{GameDate: "2025-11-19"},
		ScheduleErr: errors.New("schedule down"),
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindNoGameToday, state.Kind)
	assert.Nil(t, state.NextGame)
}

func TestScheduledGameStopsPolling(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.ScheduledGame("g1", "GSW", "LAL")},
		},
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindScheduled, state.Kind)
	require.NotNil(t, state.Game)
	assert.Equal(t, "g1", state.Game.ID)
	assert.False(t, trk.IsPolling())
}

func TestLiveGameStartsPollingAndRestoresCachedWorm(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.LiveGame("g1", "GSW", "LAL")},
		},
		CachedPlayByPlay: &domain.PlayByPlay{
			GameID: "g1",
			Actions: []domain.GameAction{
				scoringAction(1, "PT11M00.00S", "2", "0"),
				scoringAction(2, "PT10M00.00S", "30", "28"),
			},
		},
	}
	trk := newTracker(stub)
	trk.Start(context.Background())
	defer trk.Stop()

	state := trk.State()
	require.Equal(t, domain.KindLive, state.Kind)
	assert.True(t, trk.IsPolling())
	require.Len(t, state.WormData, 2)
	assert.Equal(t, 2, state.LastFetchedPeriod)
	// Tracked team is home, leading by 2 in both samples.
	assert.Equal(t, 2, state.WormData[0].ScoreDiff)
}

func TestLiveGameFirstObservationForcesRefresh(t *testing.T) {
	game := testutil.LiveGame("g1", "GSW", "LAL")
	// The cached data already covers the current period, so only the
	// unknown last score can trigger the refresh.
	cached := &domain.PlayByPlay{
		GameID:  "g1",
		Actions: []domain.GameAction{scoringAction(2, "PT06M00.00S", "48", "45")},
	}
	fresh := &domain.PlayByPlay{
		GameID: "g1",
		Actions: []domain.GameAction{
			scoringAction(2, "PT06M00.00S", "48", "45"),
			scoringAction(2, "PT05M30.00S", "50", "45"),
		},
	}
	stub := &teststubs.StubProvider{
		Scoreboard:       domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}},
		CachedPlayByPlay: cached,
		PlayByPlay:       fresh,
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)
	defer trk.Stop()

	modes := stub.Modes()
	require.Len(t, modes, 2)
	assert.Equal(t, providers.FetchCacheOnly, modes[0])
	assert.Equal(t, providers.FetchForce, modes[1])

	// The published worm reflects the forced fetch, not the stale cache.
	state := trk.State()
	require.Equal(t, domain.KindLive, state.Kind)
	assert.Len(t, state.WormData, 2)
}

func TestLiveGameUnchangedScoreSkipsRefresh(t *testing.T) {
	game := testutil.LiveGame("g1", "GSW", "LAL")
	cached := &domain.PlayByPlay{
		GameID:  "g1",
		Actions: []domain.GameAction{scoringAction(2, "PT06M00.00S", "48", "45")},
	}
	stub := &teststubs.StubProvider{
		Scoreboard:       domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}},
		CachedPlayByPlay: cached,
		PlayByPlay:       cached,
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	// Second cycle with the same score and period: cache restore only.
	trk.fetchCycle(context.Background(), false)
	defer trk.Stop()

	modes := stub.Modes()
	require.Len(t, modes, 3)
	assert.Equal(t, providers.FetchCacheOnly, modes[2])
}

func TestLiveGameScoreChangeTriggersForcedRefresh(t *testing.T) {
	game := testutil.LiveGame("g1", "GSW", "LAL")
	cached := &domain.PlayByPlay{
		GameID:  "g1",
		Actions: []domain.GameAction{scoringAction(2, "PT06M00.00S", "48", "45")},
	}
	fresh := &domain.PlayByPlay{
		GameID: "g1",
		Actions: []domain.GameAction{
			scoringAction(2, "PT06M00.00S", "48", "45"),
			scoringAction(2, "PT05M30.00S", "51", "45"),
		},
	}
	stub := &teststubs.StubProvider{
		Scoreboard:       domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}},
		CachedPlayByPlay: cached,
		PlayByPlay:       fresh,
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	// Second cycle with a changed score.
	game.HomeTeam.Score = 51
	stub.Scoreboard = domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}}
	trk.fetchCycle(context.Background(), false)
	defer trk.Stop()

	modes := stub.Modes()
	require.NotEmpty(t, modes)
	assert.Equal(t, providers.FetchForce, modes[len(modes)-1])

	state := trk.State()
	require.Equal(t, domain.KindLive, state.Kind)
	assert.Len(t, state.WormData, 2)
}

func TestLiveGamePeriodAdvanceTriggersForcedRefresh(t *testing.T) {
	game := testutil.LiveGame("g1", "GSW", "LAL")
	game.Period = 3
	// Cached data still ends in period 2: the gap forces a refresh.
	cached := &domain.PlayByPlay{
		GameID:  "g1",
		Actions: []domain.GameAction{scoringAction(2, "PT00M10.00S", "48", "45")},
	}
	fresh := &domain.PlayByPlay{
		GameID: "g1",
		Actions: []domain.GameAction{
			scoringAction(2, "PT00M10.00S", "48", "45"),
			scoringAction(3, "PT11M00.00S", "50", "45"),
		},
	}
	stub := &teststubs.StubProvider{
		Scoreboard:       domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}},
		CachedPlayByPlay: cached,
		PlayByPlay:       fresh,
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)
	defer trk.Stop()

	state := trk.State()
	require.Equal(t, domain.KindLive, state.Kind)
	assert.Equal(t, 3, state.LastFetchedPeriod)
	assert.Len(t, state.WormData, 2)
}

func TestLiveRefreshFailureKeepsPreviousWorm(t *testing.T) {
	game := testutil.LiveGame("g1", "GSW", "LAL")
	game.Period = 3
	cached := &domain.PlayByPlay{
		GameID:  "g1",
		Actions: []domain.GameAction{scoringAction(2, "PT00M10.00S", "48", "45")},
	}
	stub := &teststubs.StubProvider{
		Scoreboard:       domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}},
		CachedPlayByPlay: cached,
		PlayByPlayErr:    errors.New("pbp down"),
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)
	defer trk.Stop()

	// Refresh failed, but the state stays live with the cached worm.
	state := trk.State()
	require.Equal(t, domain.KindLive, state.Kind)
	assert.Len(t, state.WormData, 1)
	assert.True(t, trk.IsPolling())
}

func TestFinalGamePublishesFinalAndStops(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.FinalGame("g1", "GSW", "LAL")},
		},
		PlayByPlay: &domain.PlayByPlay{
			GameID:  "g1",
			Actions: []domain.GameAction{scoringAction(4, "PT00M00.00S", "112", "108")},
		},
		Schedule: domain.Schedule{Games: []domain.ScheduledGame{{
			ID:           "next",
			StartTimeUTC: "2025-11-21T02:00:00Z",
			HomeTeam:     domain.ScheduledTeam{Tricode: "GSW"},
			AwayTeam:     domain.ScheduledTeam{Tricode: "SAS"},
		}}},
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindFinal, state.Kind)
	require.Len(t, state.WormData, 1)
	assert.Equal(t, 4, state.WormData[0].ScoreDiff)
	require.NotNil(t, state.NextGame)
	assert.Equal(t, "next", state.NextGame.ID)
	assert.False(t, trk.IsPolling())
}

func TestFinalGamePlayByPlayFailureYieldsEmptyWorm(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.FinalGame("g1", "GSW", "LAL")},
		},
		PlayByPlayErr: errors.New("pbp down"),
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindFinal, state.Kind)
	assert.Empty(t, state.WormData)
}

func TestStaleFinalGameFallsThroughToNextGame(t *testing.T) {
	morningAfter := testutil.NowAt(time.Date(2025, 11, 20, 11, 0, 0, 0, time.UTC))
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.FinalGame("g1", "GSW", "LAL")},
		},
		Schedule: domain.Schedule{Games: []domain.ScheduledGame{{
			ID:           "next",
			StartTimeUTC: "2025-11-21T02:00:00Z",
			HomeTeam:     domain.ScheduledTeam{Tricode: "GSW"},
			AwayTeam:     domain.ScheduledTeam{Tricode: "SAS"},
		}}},
	}
	res := resolver.New(stub, nil, resolver.WithClock(morningAfter))
	trk := New(res, stub, "GSW", nil, nil, WithClock(morningAfter))
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindScheduled, state.Kind)
	require.NotNil(t, state.Game)
	assert.Equal(t, "next", state.Game.ID)
}

func TestSelectTeamRestartsFromLoading(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.LiveGame("g1", "GSW", "LAL")},
		},
	}
	trk := newTracker(stub)
	trk.Start(context.Background())
	require.True(t, trk.IsPolling())

	stub.Scoreboard = domain.Scoreboard{GameDate: "2025-11-19"}
	trk.SelectTeam(context.Background(), "BOS")
	defer trk.Stop()

	assert.Equal(t, "BOS", trk.Team())
	assert.Equal(t, domain.KindNoGameToday, trk.State().Kind)
}

func TestSelectSameTeamIsNoOp(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{GameDate: "2025-11-19"},
	}
	trk := newTracker(stub)
	trk.Start(context.Background())
	calls := stub.ScoreboardCalls.Load()

	trk.SelectTeam(context.Background(), "GSW")
	assert.Equal(t, calls, stub.ScoreboardCalls.Load())
}

func TestUnknownStatusPublishesError(t *testing.T) {
	game := testutil.LiveGame("g1", "GSW", "LAL")
	game.Status = 9
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{GameDate: "2025-11-19", Games: []domain.Game{game}},
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	state := trk.State()
	require.Equal(t, domain.KindError, state.Kind)
	assert.Contains(t, state.Message, "9")
}

func TestSubscribeReceivesCurrentAndSubsequentStates(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{GameDate: "2025-11-19"},
	}
	trk := newTracker(stub)

	states, cancel := trk.Subscribe()
	defer cancel()

	first := <-states
	assert.Equal(t, domain.KindLoading, first.Kind)

	trk.fetchCycle(context.Background(), false)
	got := <-states
	assert.Equal(t, domain.KindNoGameToday, got.Kind)
}

func TestUnsubscribeDuringPublishDoesNotPanic(t *testing.T) {
	trk := newTracker(&teststubs.StubProvider{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			trk.publish(domain.Loading())
		}
	}()

	// Churn subscriptions while the publisher runs. A cancel landing
	// between snapshot and send used to close a channel mid-fanout.
	for i := 0; i < 500; i++ {
		states, cancel := trk.Subscribe()
		<-states
		cancel()
	}
	<-done
}

func TestLiveTeamsExposed(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games:    []domain.Game{testutil.LiveGame("g1", "BOS", "NYK")},
		},
	}
	trk := newTracker(stub)
	trk.fetchCycle(context.Background(), true)

	assert.ElementsMatch(t, []string{"BOS", "NYK"}, trk.LiveTeams())
}
