package patterns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Score is the state pushed by a Scoreboard.
type Score struct {
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
}

func (s Score) String() string {
	return fmt.Sprintf("%s %d - %d %s", s.Home, s.HomeGoals, s.AwayGoals, s.Away)
}

// ScoreSubscriber receives score updates.
type ScoreSubscriber interface {
	OnScore(ctx context.Context, score Score) error
}

// Scoreboard notifies subscribers of every goal. A failing subscriber does
// not prevent the others from being notified.
type Scoreboard struct {
	score  Score
	subs   []ScoreSubscriber
	logger *slog.Logger
}

// NewScoreboard creates a scoreboard for a fixture.
func NewScoreboard(home, away string, logger *slog.Logger) *Scoreboard {
	return &Scoreboard{score: Score{Home: home, Away: away}, logger: logger}
}

// Subscribe adds a subscriber.
func (b *Scoreboard) Subscribe(s ScoreSubscriber) {
	b.subs = append(b.subs, s)
}

// Unsubscribe removes every registration of s.
func (b *Scoreboard) Unsubscribe(s ScoreSubscriber) {
	kept := b.subs[:0]
	for _, sub := range b.subs {
		if sub != s {
			kept = append(kept, sub)
		}
	}
	b.subs = kept
}

// Goal records a goal for the home or away side and publishes the score.
func (b *Scoreboard) Goal(ctx context.Context, home bool) error {
	if home {
		b.score.HomeGoals++
	} else {
		b.score.AwayGoals++
	}
	return b.publish(ctx)
}

// Score returns the current score.
func (b *Scoreboard) Score() Score {
	return b.score
}

func (b *Scoreboard) publish(ctx context.Context) error {
	var errs []error
	for i, sub := range b.subs {
		if err := sub.OnScore(ctx, b.score); err != nil {
			b.logger.Warn("subscriber failed", "subscriber", i, "error", err)
			errs = append(errs, fmt.Errorf("subscriber %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ScreenSubscriber prints every score.
type ScreenSubscriber struct {
	Name string
	Out  io.Writer
}

func (s *ScreenSubscriber) OnScore(ctx context.Context, score Score) error {
	_, err := fmt.Fprintf(s.Out, "  [%s] %s\n", s.Name, score)
	return err
}

// ArchiveSubscriber keeps every score it receives.
type ArchiveSubscriber struct {
	Scores []Score
}

func (s *ArchiveSubscriber) OnScore(ctx context.Context, score Score) error {
	s.Scores = append(s.Scores, score)
	return nil
}

// errPagerOffline is the failure of the demo's broken subscriber.
var errPagerOffline = errors.New("pager offline")

type pagerSubscriber struct{}

func (pagerSubscriber) OnScore(ctx context.Context, score Score) error {
	return errPagerOffline
}

// RunObserver plays a short match with a broken subscriber in the middle.
func RunObserver(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	header(w, "Observer: live scoreboard")

	board := NewScoreboard("Rovers", "United", logger)
	tv := &ScreenSubscriber{Name: "tv", Out: w}
	archive := &ArchiveSubscriber{}
	pager := pagerSubscriber{}
	board.Subscribe(tv)
	board.Subscribe(pager)
	board.Subscribe(archive)

	for _, home := range []bool{true, false, true} {
		err := board.Goal(ctx, home)
		if err != nil && !errors.Is(err, errPagerOffline) {
			return err
		}
		if err != nil {
			fmt.Fprintf(w, "  (isolated failure: %v)\n", err)
		}
	}

	board.Unsubscribe(pager)
	if err := board.Goal(ctx, false); err != nil {
		return err
	}

	fmt.Fprintf(w, "  archive holds %d scores, final %s\n", len(archive.Scores), board.Score())
	return nil
}
