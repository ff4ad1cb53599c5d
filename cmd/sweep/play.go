package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

const frameDuration = 50 * time.Millisecond

func printBoard(w io.Writer, g *game.Game) error {
	b := g.Board()
	_, err := fmt.Fprintf(w, "%s %dx%d  flags %d  time %d  %s\n%s",
		g.Difficulty(), b.Width(), b.Height(),
		b.FlagsLeft(), int(g.Elapsed()), b.State(), b,
	)
	return err
}

// play owns g: commands and animation frames are applied here only.
func play(ctx context.Context, g *game.Game, lines <-chan string, w io.Writer) error {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	last := time.Now()

	advance := func(now time.Time) bool {
		dt := now.Sub(last).Seconds()
		last = now
		return g.Update(dt)
	}

	if err := printBoard(w, g); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			advance(time.Now())
			wasSequencing := g.Sequencing()
			if _, err := commands.ExecuteAll(g, line); err != nil {
				if _, err := fmt.Fprintln(w, "error:", err); err != nil {
					return err
				}
				continue
			}
			if err := printBoard(w, g); err != nil {
				return err
			}
			if g.Sequencing() && !wasSequencing {
				if _, err := fmt.Fprintln(w, "BOOM"); err != nil {
					return err
				}
			}
			if g.Board().State() == mines.Win {
				if _, err := fmt.Fprintln(w, "cleared! type n for a new game"); err != nil {
					return err
				}
			}

		case now := <-ticker.C:
			sequencing := g.Sequencing()
			if advance(now) {
				if _, err := fmt.Fprint(w, "boom "); err != nil {
					return err
				}
			}
			if sequencing && !g.Sequencing() {
				if _, err := fmt.Fprintln(w, "\nall bombs went off, type r to retry"); err != nil {
					return err
				}
			}
		}
	}
}
