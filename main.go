package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err = run(context.Background(), config, os.Stdout, sigChan); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errInterrupted stops the group when a shutdown signal arrives
var errInterrupted = errors.New("interrupted")

// run drives the game until it finishes, ctx is cancelled or a signal arrives on sigChan.
// The grid is only touched by the loop goroutine.
func run(ctx context.Context, config utils.Config, out io.Writer, sigChan <-chan os.Signal) error {
	g, err := initializeGame(config, out)
	if err != nil {
		return errors.Wrap(err, "[run] failed to initialize game")
	}
	g.displayGameInfo()

	var (
		eg, loopCtx = errgroup.WithContext(ctx)
		done        = make(chan struct{})
	)

	eg.Go(func() error {
		defer close(done)
		return g.loop(loopCtx)
	})

	// A signal fails the group, which cancels loopCtx and stops the loop
	eg.Go(func() error {
		select {
		case <-sigChan:
			return errInterrupted
		case <-loopCtx.Done():
		case <-done:
		}
		return nil
	})

	err = eg.Wait()
	if errors.Is(err, errInterrupted) {
		fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
		err = nil
	}
	g.displayFinalStats()
	return err
}

// loop renders and advances one generation per frame
func (g *game) loop(ctx context.Context) error {
	var (
		ticker        = time.NewTicker(max(g.config.FrameRate, time.Millisecond))
		lastFrameTime = time.Now()
	)
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		more, err := g.step(frameStart.Sub(lastFrameTime))
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		lastFrameTime = frameStart

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
