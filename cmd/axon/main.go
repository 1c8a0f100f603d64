// Package main provides the axon CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"

	"github.com/axon-ml/axon/internal/config"
	"github.com/axon-ml/axon/internal/dataset"
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/train"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "axon: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "axon %s\n", version)
		return nil
	case "train":
		return trainCmd(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "axon - small feed-forward neural networks")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  train      Train a network (see axon train -h)")
	fmt.Fprintln(w, "  version    Show version")
}

func trainCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML run config (defaults to the XOR run)")
	datasetName := fs.String("dataset", "", "Dataset: xor or sine (overrides config)")
	epochs := fs.Int("epochs", 0, "Number of training epochs (overrides config)")
	lr := fs.Float64("lr", 0, "Learning rate (overrides config)")
	momentum := fs.Float64("momentum", -1, "Momentum in [0, 1) (overrides config)")
	seed := fs.Int64("seed", 0, "Seed for weights and data (overrides config)")
	verbose := fs.Bool("v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	runCfg := config.Default()
	if *configPath != "" {
		var err error
		if runCfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	applyOverrides(&runCfg, fs, *datasetName, *epochs, *lr, *momentum, *seed)
	if err := runCfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	net, err := runCfg.Network()
	if err != nil {
		return err
	}
	opt, err := runCfg.Optimizer()
	if err != nil {
		return err
	}
	samples, err := dataset.ByName(runCfg.Dataset.Name, runCfg.Dataset.Samples, runCfg.Dataset.Noise, nn.NewRand(runCfg.Seed))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Training %v network (%s, %s) on %s: %d samples, %d weights\n",
		runCfg.Topology, runCfg.Activation, runCfg.Criterion, runCfg.Dataset.Name, len(samples), net.NumWeights())

	trainer := train.New(net, opt, train.Config{
		Epochs:     runCfg.Epochs,
		TargetLoss: runCfg.TargetLoss,
		Shuffle:    runCfg.Shuffle,
		Seed:       runCfg.Seed,
		Logger:     logger,
	})
	history, err := trainer.Fit(ctx, samples)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Finished after %d epochs, loss %.6f\n\n", history.Epochs(), history.Final())

	probe := samples
	if strings.EqualFold(runCfg.Dataset.Name, "sine") {
		probe = dataset.SineGrid(20)
	}
	report, err := train.Evaluate(net, probe)
	if err != nil {
		return err
	}
	printReport(stdout, report)
	return nil
}

// applyOverrides copies explicitly set flags onto cfg.
func applyOverrides(cfg *config.Run, fs *flag.FlagSet, datasetName string, epochs int, lr, momentum float64, seed int64) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.Dataset.Name = datasetName
			if datasetName == "sine" && len(cfg.Topology) > 0 && cfg.Topology[0] != 1 {
				cfg.Topology = []int{1, 16, 8, 1}
			}
		case "epochs":
			cfg.Epochs = epochs
		case "lr":
			cfg.LearningRate = lr
		case "momentum":
			cfg.Momentum = momentum
		case "seed":
			cfg.Seed = seed
		}
	})
}

func printReport(w io.Writer, r *train.Report) {
	fmt.Fprintln(w, "  inputs                 target      prediction")
	fmt.Fprintln(w, "  ---------------------  ----------  ----------")
	for _, p := range r.Predictions {
		fmt.Fprintf(w, "  %-21s  %10.4f  %10.4f\n", fmt.Sprintf("%.3v", p.Inputs), p.Targets[0], p.Outputs[0])
	}
	fmt.Fprintf(w, "\nLoss: %.6f  Mean absolute error: %.6f\n", r.Loss, r.MeanAbsError)
}
