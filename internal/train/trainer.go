// Package train runs the epoch loop around an nn.Network.
//
// The engine itself only knows about single samples. This package owns what
// sits around it: iterating a dataset for a number of epochs, averaging the
// per-sample losses, stopping early, and logging progress.
package train

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
)

// ErrEmptyDataset is returned when there is nothing to train on.
var ErrEmptyDataset = errors.New("empty dataset")

// Sample is one input vector and its expected output.
type Sample struct {
	Inputs  []float64
	Targets []float64
}

// Config holds configuration for a training run.
type Config struct {
	Epochs     int          // Number of passes over the dataset (default: 100)
	TargetLoss float64      // Stop once the epoch loss drops below this; 0 disables
	LogEvery   int          // Log every N epochs (default: Epochs/10, at least 1)
	Shuffle    bool         // Visit samples in a new random order each epoch
	Seed       int64        // Seed for the shuffle order
	Logger     *slog.Logger // Progress logger (default: slog.Default())
}

// History records the losses of a training run.
type History struct {
	RunID     string
	Losses    []float64 // mean sample loss per completed epoch
	Converged bool      // TargetLoss was reached
}

// Epochs returns the number of completed epochs.
func (h *History) Epochs() int {
	return len(h.Losses)
}

// Final returns the loss of the last completed epoch, or 0 if none completed.
func (h *History) Final() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// Trainer drives an optimizer over a network, one sample at a time.
type Trainer struct {
	net    *nn.Network
	opt    optim.Optimizer
	cfg    Config
	rng    *rand.Rand
	runID  string
	logger *slog.Logger
}

// New creates a trainer for net.
func New(net *nn.Network, opt optim.Optimizer, cfg Config) *Trainer {
	// Set defaults
	if cfg.Epochs <= 0 {
		cfg.Epochs = 100
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = max(cfg.Epochs/10, 1)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	runID := uuid.NewString()
	return &Trainer{
		net:    net,
		opt:    opt,
		cfg:    cfg,
		rng:    nn.NewRand(cfg.Seed),
		runID:  runID,
		logger: cfg.Logger.With("run", runID),
	}
}

// RunID returns the identifier attached to this trainer's log records.
func (t *Trainer) RunID() string {
	return t.runID
}

// Step trains on a single sample and returns its loss before the update.
func (t *Trainer) Step(s Sample) (float64, error) {
	if err := t.net.FeedForward(s.Inputs); err != nil {
		return 0, err
	}
	loss, err := t.net.ComputeLoss(s.Targets)
	if err != nil {
		return 0, err
	}
	if err := t.net.BackPropagate(); err != nil {
		return 0, err
	}
	t.opt.Step(t.net)
	return loss, nil
}

// Fit trains on samples until Epochs have run or TargetLoss is reached.
//
// ctx is checked between epochs; an epoch in progress always completes.
// On error the history of the completed epochs is returned with it.
func (t *Trainer) Fit(ctx context.Context, samples []Sample) (*History, error) {
	h := &History{RunID: t.runID}
	if len(samples) == 0 {
		return h, ErrEmptyDataset
	}

	order := make([]int, len(samples))
	for i := range order {
		order[i] = i
	}
	losses := make([]float64, len(samples))

	t.logger.Debug("training started",
		"topology", t.net.Topology(),
		"activation", t.net.Activation().Name(),
		"criterion", t.net.Criterion().Name(),
		"samples", len(samples),
		"epochs", t.cfg.Epochs,
		"lr", t.opt.GetLR())

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return h, errors.Wrapf(err, "stopped before epoch %d", epoch)
		}

		if t.cfg.Shuffle {
			t.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		for i, idx := range order {
			loss, err := t.Step(samples[idx])
			if err != nil {
				return h, errors.Wrapf(err, "epoch %d sample %d", epoch, idx)
			}
			losses[i] = loss
		}

		epochLoss := stat.Mean(losses, nil)
		h.Losses = append(h.Losses, epochLoss)
		t.opt.EndEpoch()

		if t.cfg.TargetLoss > 0 && epochLoss < t.cfg.TargetLoss {
			h.Converged = true
			t.logger.Info("target loss reached", "epoch", epoch, "loss", epochLoss)
			break
		}

		if epoch%t.cfg.LogEvery == 0 || epoch == t.cfg.Epochs {
			t.logger.Info("epoch finished", "epoch", epoch, "loss", epochLoss, "lr", t.opt.GetLR())
		}
	}

	return h, nil
}
