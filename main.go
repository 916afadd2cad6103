package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/utils"
)

const configFile = "config.json"

var errInterrupted = errors.New("interrupted")

func main() {
	if err := run(context.Background(), configFile, os.Stdout); err != nil {
		utils.Logf("%+v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when it is absent
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		utils.Logf("using default configuration (%s not found)", filename)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// watchSignals returns errInterrupted on SIGINT or SIGTERM, or nil once ctx is done
func watchSignals(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		return nil
	case sig := <-sigChan:
		return errors.Wrapf(errInterrupted, "[watchSignals] received %s", sig)
	}
}

func run(ctx context.Context, filename string, out io.Writer) error {
	config, err := loadConfig(filename)
	if err != nil {
		return err
	}

	g, err := initializeGame(config, out, nil)
	if err != nil {
		return err
	}
	displayGameInfo(g)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return watchSignals(ctx)
	})
	eg.Go(func() error {
		// a finished loop releases the signal watcher
		defer cancel()
		return g.run(ctx)
	})

	err = eg.Wait()
	displayFinalStats(g)
	if errors.Is(err, errInterrupted) {
		utils.Logf("shutting down gracefully...")
		return nil
	}
	return err
}
