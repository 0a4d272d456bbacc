package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/veriblas/veriblas/backend/cpu"
	"github.com/veriblas/veriblas/backend/webgpu"
	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/conformance"
	"github.com/veriblas/veriblas/internal/logger"
	"github.com/veriblas/veriblas/ref"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "suite",
			Aliases:  []string{"s"},
			Usage:    "path to a YAML case suite",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "engine",
			Aliases: []string{"e"},
			Usage:   "engine under test: cpu, webgpu or reference",
			Value:   "cpu",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "console or json",
			Value: "console",
		},
	}
}

// selectEngine builds the requested engine. The returned release func is a
// no-op for host engines.
func selectEngine(name string) (blas.Engine, func(), error) {
	switch name {
	case "cpu":
		return cpu.New(), func() {}, nil
	case "reference":
		return ref.Engine{}, func() {}, nil
	case "webgpu":
		eng, err := webgpu.New()
		if err != nil {
			return nil, nil, fmt.Errorf("webgpu engine unavailable: %w", err)
		}
		return eng, eng.Release, nil
	default:
		return nil, nil, fmt.Errorf("unknown engine %q", name)
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run a conformance suite against an engine",
		Flags: commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.New(os.Stderr, cmd.String("log-level"), cmd.String("log-format"))

			suite, err := conformance.LoadSuite(cmd.String("suite"))
			if err != nil {
				return err
			}

			eng, release, err := selectEngine(cmd.String("engine"))
			if err != nil {
				return err
			}
			defer release()

			sum, err := suite.Run(eng, log)
			if err != nil {
				return err
			}

			log.Info().
				Str("suite", suite.Name).
				Int("total", sum.Total).
				Int("passed", sum.Passed).
				Int("failed", sum.Failed).
				Msg("suite finished")
			if !sum.Ok() {
				return fmt.Errorf("%d of %d cases failed", sum.Failed, sum.Total)
			}
			return nil
		},
	}
}

func benchCmd() *cli.Command {
	flags := append(commonFlags(), &cli.IntFlag{
		Name:  "iters",
		Usage: "timing iterations per case",
		Value: 10,
	})
	return &cli.Command{
		Name:  "bench",
		Usage: "Time suite cases on an engine and report GFLOP/s",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.New(os.Stderr, cmd.String("log-level"), cmd.String("log-format"))

			suite, err := conformance.LoadSuite(cmd.String("suite"))
			if err != nil {
				return err
			}
			iters := int(cmd.Int("iters"))
			for i := range suite.Cases {
				suite.Cases[i].Iters = iters
			}

			eng, release, err := selectEngine(cmd.String("engine"))
			if err != nil {
				return err
			}
			defer release()

			sum, err := suite.Run(eng, log)
			if err != nil {
				return err
			}

			for _, rep := range sum.Reports {
				fmt.Printf("%-14s %-8s %10.3f GFLOP/s  engine %v  reference %v\n",
					rep.Function, rep.Engine, rep.GFlops(), rep.EngineTime/time.Duration(rep.Iters), rep.RefTime)
			}
			if !sum.Ok() {
				return fmt.Errorf("%d of %d cases failed", sum.Failed, sum.Total)
			}
			return nil
		},
	}
}
