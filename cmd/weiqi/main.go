// weiqi plays, replays, and records games of Go from the command line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/logw"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/coord"
	"github.com/sumiyama/weiqi/pkg/game"
	"github.com/sumiyama/weiqi/pkg/search"
	"github.com/sumiyama/weiqi/pkg/sgf"
)

var (
	size   = flag.Int("size", 9, "Board width and height")
	depth  = flag.Int("depth", 3, "Alpha-beta search depth in plies")
	auto   = flag.Bool("a", false, "Play a full game of engine-vs-engine alpha-beta self-play")
	input  = flag.String("f", "", "Replay moves from an SGF file before prompting")
	output = flag.String("s", "", "Record the finished game to an SGF file")
	black  = flag.String("black", "Black", "Black player's name, recorded in saved SGF")
	white  = flag.String("white", "White", "White player's name, recorded in saved SGF")
	komi   = flag.Float64("komi", 0, "Komi (accepted but unused: not scored and not written to saved SGF)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: weiqi [options]

weiqi plays Go on the command line, with optional alpha-beta self-play
and SGF replay/recording.
Options:
`)
		flag.PrintDefaults()
	}
}

// table bundles the decorator stack main builds, since the has-a
// decorators in pkg/game don't promote each other's extra methods: a
// *game.WithNames wrapping a *game.WithRecording only exposes game.Game
// plus Name, not Moves. Keeping the two typed references side by side
// is simpler than widening the Game interface for one CLI feature.
type table struct {
	game.Game
	names     *game.WithNames
	recording *game.WithRecording
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *size < 1 || *size > board.MaxDimension {
		logw.Exitf(ctx, "-size must be between 1 and %d", board.MaxDimension)
	}

	base, err := game.New(*size, *size)
	if err != nil {
		logw.Exitf(ctx, "Failed to create board: %v", err)
	}

	recording := game.NewWithRecording(game.NewWithHistory(base))
	names := game.NewWithNames(recording, *black, *white)
	t := table{Game: names, names: names, recording: recording}

	if *input != "" {
		if err := replay(t, *input); err != nil {
			logw.Exitf(ctx, "Failed to replay %v: %v", *input, err)
		}
	}

	if *auto {
		selfPlay(ctx, t, *depth)
	} else {
		interactive(ctx, t, *depth)
	}

	if *output != "" {
		if err := save(t, *output, *komi); err != nil {
			logw.Exitf(ctx, "Failed to save %v: %v", *output, err)
		}
		logw.Infof(ctx, "Saved game to %v", *output)
	}
}

func replay(t table, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rec, err := sgf.Read(f)
	if err != nil {
		return err
	}
	for _, m := range rec.Moves {
		if err := t.Play(m); err != nil {
			return fmt.Errorf("replaying %v: %w", m, err)
		}
	}
	return nil
}

func save(t table, path string, komi float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rec := &sgf.Record{
		Black: t.names.Name(board.Black),
		White: t.names.Name(board.White),
		Moves: t.recording.Moves(),
	}
	_ = komi // neither part of Score nor written to the SGF record.
	return sgf.Write(f, rec, time.Time{})
}

func selfPlay(ctx context.Context, t table, depth int) {
	s := search.Searcher{MaxDepth: depth}
	for !t.GameOver() {
		fmt.Println(t)
		m, nodes, err := s.FindMove(ctx, t)
		if err != nil {
			logw.Exitf(ctx, "Search failed: %v", err)
		}
		mover := t.ToMove()
		if err := t.Play(m); err != nil {
			logw.Exitf(ctx, "Engine chose an illegal move %v: %v", m, err)
		}
		logw.Infof(ctx, "%v plays %v (%d nodes)", mover, m, nodes)
	}
	fmt.Println(t)
	fmt.Printf("Final score (black-positive): %d\n", t.Score())
}

func interactive(ctx context.Context, t table, depth int) {
	scanner := bufio.NewScanner(os.Stdin)
	s := search.Searcher{MaxDepth: depth}

	for !t.GameOver() {
		fmt.Println(t)
		fmt.Printf("%v to move (vertex, \"pass\", \"go\", \"undo\", or \"quit\"): ", t.ToMove())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		switch line {
		case "quit":
			return
		case "undo":
			if !t.Undo() {
				fmt.Println("nothing to undo")
			}
			continue
		case "go":
			m, _, err := s.FindMove(ctx, t)
			if err != nil {
				fmt.Println("search failed:", err)
				continue
			}
			if err := t.Play(m); err != nil {
				fmt.Println("search produced an illegal move:", err)
			}
			continue
		}

		v, err := coord.ParseVertex(t.Height(), line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := t.Play(v.ToMove(t.ToMove(), t.Height())); err != nil {
			fmt.Println(err)
		}
	}
	fmt.Println(t)
	fmt.Printf("Final score (black-positive): %d\n", t.Score())
}
