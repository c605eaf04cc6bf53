// Command xiangqi-cli plays a Xiangqi game from the terminal: the search
// engine plays the side chosen with -engine-side (red, black, or both),
// any other side reads coordinate moves from stdin, and the board is
// rendered with colored pieces between turns.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"xiangqi/internal/book"
	"xiangqi/internal/board"
	"xiangqi/internal/engine"
	"xiangqi/internal/game"
	"xiangqi/internal/storage"
	"xiangqi/internal/xlog"
)

func main() {
	fen := flag.String("fen", "", "starting position as board-placement/side FEN (default: the standard opening)")
	depth := flag.Int("depth", 8, "search depth limit, ignored if -movetime or -wtime/-btime is set")
	movetimeMs := flag.Int64("movetime", 0, "search time budget in milliseconds; overrides -depth when > 0")
	wtimeMs := flag.Int64("wtime", 0, "red's remaining clock time in milliseconds, for chess-clock time allocation")
	btimeMs := flag.Int64("btime", 0, "black's remaining clock time in milliseconds, for chess-clock time allocation")
	wincMs := flag.Int64("winc", 0, "red's per-move increment in milliseconds")
	bincMs := flag.Int64("binc", 0, "black's per-move increment in milliseconds")
	movesToGo := flag.Int("movestogo", 0, "moves remaining to the next time control, 0 for sudden death")
	bookPath := flag.String("book", "", "optional opening book file (binary format, see internal/book)")
	configPath := flag.String("config", "", "optional engine configuration file (TOML)")
	storePath := flag.String("store", "", "optional persistent store directory for settings/match stats (BadgerDB)")
	engineSide := flag.String("engine-side", "black", "which side the engine plays: red, black, or both")
	logLevel := flag.String("log-level", "NOTICE", "log level: DEBUG, INFO, NOTICE, WARNING, ERROR")
	flag.Parse()

	xlog.Init(*logLevel)
	log := xlog.MustGetLogger("cli")

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.LoadConfigTOML(*configPath)
		if err != nil {
			log.Errorf("loading config %s, using defaults: %v", *configPath, err)
		} else {
			cfg = loaded
		}
	}

	var store *storage.Store
	if *storePath != "" {
		s, err := storage.OpenAt(*storePath)
		if err != nil {
			log.Errorf("opening store at %s: %v", *storePath, err)
		} else {
			store = s
			defer store.Close()
			if settings, err := store.LoadSettings(); err == nil {
				cfg.TTSizeMB = settings.TTSizeMB
				cfg.PruningMethod = settings.PruningMethod
				cfg.PruningMultiplier = settings.PruningMultiplier
			}
		}
	}

	eng := engine.NewEngine(cfg)

	if *bookPath != "" {
		b, err := book.LoadBinaryFile(*bookPath)
		if err != nil {
			log.Errorf("loading book %s: %v", *bookPath, err)
		} else {
			eng.SetBook(b)
		}
	}

	var g *game.State
	if *fen != "" {
		pos, turn, err := board.FromFEN(*fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -fen: %v\n", err)
			os.Exit(1)
		}
		g = game.FromPosition(pos, turn)
	} else {
		g = game.New()
	}

	useClock := *wtimeMs > 0 || *btimeMs > 0

	reader := bufio.NewScanner(os.Stdin)
	var totalNodes uint64

	for g.Status == game.Playing {
		printBoard(g)

		if engineTurn(*engineSide, g.Turn) {
			limit := engine.DepthLimit(*depth)
			switch {
			case useClock:
				timeLeft, inc := time.Duration(*wtimeMs)*time.Millisecond, time.Duration(*wincMs)*time.Millisecond
				if g.Turn == board.Black {
					timeLeft, inc = time.Duration(*btimeMs)*time.Millisecond, time.Duration(*bincMs)*time.Millisecond
				}
				limit = engine.ClockLimit(timeLeft, inc, *movesToGo, len(g.History))
			case *movetimeMs > 0:
				limit = engine.TimeLimit(*movetimeMs)
			}

			eng.SetHistory(g.Hashes())
			move, stats, ok := eng.Search(g.Position, g.Turn, limit, nil)
			totalNodes += stats.Nodes
			if !ok {
				break
			}
			fmt.Printf("%s plays %s (depth=%d score=%d nodes=%d)\n", g.Turn, move, stats.Depth, stats.Score, stats.Nodes)
			if err := g.MakeMove(move.From(), move.To()); err != nil {
				log.Errorf("engine produced an illegal move %s: %v", move, err)
				break
			}
			continue
		}

		fmt.Printf("%s to move, enter \"fromRow fromCol toRow toCol\": ", g.Turn)
		if !reader.Scan() {
			break
		}
		from, to, err := parseMove(reader.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := g.MakeMove(from, to); err != nil {
			fmt.Println(err)
			continue
		}
	}

	printBoard(g)
	fmt.Printf("game over: %s\n", g.Status)

	if store != nil {
		result := storage.MatchResult{SearchNodes: totalNodes}
		switch g.Status {
		case game.Checkmate:
			result.Winner = g.Winner
		case game.Stalemate:
			result.Winner = g.Turn.Other()
		}
		if err := store.RecordMatch(result); err != nil {
			log.Errorf("recording match stats: %v", err)
		}
	}
}

func engineTurn(engineSide string, turn board.Color) bool {
	switch strings.ToLower(engineSide) {
	case "red":
		return turn == board.Red
	case "both":
		return true
	default:
		return turn == board.Black
	}
}

func parseMove(line string) (board.Coordinate, board.Coordinate, error) {
	var fr, fc, tr, tc int
	if _, err := fmt.Sscanf(line, "%d %d %d %d", &fr, &fc, &tr, &tc); err != nil {
		return board.Coordinate{}, board.Coordinate{}, fmt.Errorf("could not parse move %q: %w", line, err)
	}
	from, ok1 := board.NewCoordinate(fr, fc)
	to, ok2 := board.NewCoordinate(tr, tc)
	if !ok1 || !ok2 {
		return board.Coordinate{}, board.Coordinate{}, fmt.Errorf("move %q is out of bounds", line)
	}
	return from, to, nil
}

var (
	redColor   = color.New(color.FgRed, color.Bold)
	blackColor = color.New(color.FgBlue, color.Bold)
)

func printBoard(g *game.State) {
	for row := 9; row >= 0; row-- {
		fmt.Printf("%d ", row)
		for col := 0; col < 9; col++ {
			pc := g.Position.PieceAt(board.NewSquare(row, col))
			if pc.IsNone() {
				fmt.Print(". ")
				continue
			}
			ch := string(pc.Char())
			if pc.Color == board.Red {
				redColor.Print(ch)
			} else {
				blackColor.Print(ch)
			}
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println("  0 1 2 3 4 5 6 7 8")
}
