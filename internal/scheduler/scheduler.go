package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"fpl-draft-board/internal/board"
)

// Refresher re-runs the pipeline on a fixed cadence so interactive callers
// mostly hit a warm cache. Failures are logged and the next run proceeds.
type Refresher struct {
	s        gocron.Scheduler
	board    *board.Board
	leagueID int
}

func New(b *board.Board, leagueID int, every time.Duration) (*Refresher, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	r := &Refresher{s: s, board: b, leagueID: leagueID}
	_, err = s.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(r.refresh),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh job: %w", err)
	}
	return r, nil
}

func (r *Refresher) Start() {
	r.s.Start()
}

func (r *Refresher) Stop() error {
	return r.s.Shutdown()
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := r.board.Fetch(ctx, r.leagueID, true); err != nil {
		slog.Error("warm refresh failed", "league_id", r.leagueID, "error", err)
		return
	}
	slog.Info("warm refresh complete", "league_id", r.leagueID)
}
