package train_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/dataset"
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
	"github.com/axon-ml/axon/internal/train"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newXORTrainer(t *testing.T, seed int64, cfg train.Config) (*nn.Network, *train.Trainer) {
	t.Helper()

	net, err := nn.NewNetwork([]int{2, 4, 1}, nn.NewTanh(), nn.NewMSE(), nn.NewRand(seed))
	require.NoError(t, err)
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.3, Momentum: 0.75})
	require.NoError(t, err)

	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	return net, train.New(net, sgd, cfg)
}

func TestFitRecordsEveryEpoch(t *testing.T) {
	_, trainer := newXORTrainer(t, 1, train.Config{Epochs: 25})

	h, err := trainer.Fit(context.Background(), dataset.XOR())
	require.NoError(t, err)

	assert.Equal(t, 25, h.Epochs())
	assert.False(t, h.Converged)
	assert.Equal(t, trainer.RunID(), h.RunID)
	assert.NotEmpty(t, h.RunID)
	for _, loss := range h.Losses {
		assert.GreaterOrEqual(t, loss, 0.0)
	}
	assert.Equal(t, h.Losses[24], h.Final())
}

func TestFitStopsAtTargetLoss(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		_, trainer := newXORTrainer(t, seed, train.Config{Epochs: 2000, TargetLoss: 0.05})

		h, err := trainer.Fit(context.Background(), dataset.XOR())
		require.NoError(t, err)
		if !h.Converged {
			continue
		}

		assert.Less(t, h.Final(), 0.05)
		assert.Less(t, h.Epochs(), 2000)
		return
	}
	t.Fatal("no seed reached the target loss")
}

func TestFitConvergesOnXOR(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		net, trainer := newXORTrainer(t, seed, train.Config{Epochs: 1000, Shuffle: true, Seed: seed})

		h, err := trainer.Fit(context.Background(), dataset.XOR())
		require.NoError(t, err)
		if h.Final() >= 0.05 {
			continue
		}

		report, err := train.Evaluate(net, dataset.XOR())
		require.NoError(t, err)
		if report.MeanAbsError < 0.3 {
			return
		}
	}
	t.Fatal("no seed converged on XOR")
}

func TestFitEmptyDataset(t *testing.T) {
	_, trainer := newXORTrainer(t, 1, train.Config{})

	h, err := trainer.Fit(context.Background(), nil)
	assert.True(t, errors.Is(err, train.ErrEmptyDataset))
	assert.Zero(t, h.Epochs())
}

func TestFitHonorsCancellation(t *testing.T) {
	_, trainer := newXORTrainer(t, 1, train.Config{Epochs: 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h, err := trainer.Fit(ctx, dataset.XOR())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, h.Epochs())
}

func TestFitReportsBadSample(t *testing.T) {
	_, trainer := newXORTrainer(t, 1, train.Config{Epochs: 3})

	samples := append(dataset.XOR(), train.Sample{Inputs: []float64{1}, Targets: []float64{0}})
	_, err := trainer.Fit(context.Background(), samples)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nn.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "sample 4")
}

func TestFitLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	_, trainer := newXORTrainer(t, 1, train.Config{Epochs: 4, LogEvery: 2, Logger: logger})

	_, err := trainer.Fit(context.Background(), dataset.XOR())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "epoch finished")
	assert.Contains(t, out, "run="+trainer.RunID())
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("epoch finished")))
}

func TestEvaluate(t *testing.T) {
	net, err := nn.NewNetwork([]int{1, 1}, nn.NewIdentity(), nn.NewMSE(), nn.NewRand(1))
	require.NoError(t, err)

	samples := []train.Sample{
		{Inputs: []float64{0}, Targets: []float64{0}},
		{Inputs: []float64{1}, Targets: []float64{1}},
	}
	report, err := train.Evaluate(net, samples)
	require.NoError(t, err)
	require.Len(t, report.Predictions, 2)

	var abs, sq float64
	for _, p := range report.Predictions {
		d := p.Outputs[0] - p.Targets[0]
		if d < 0 {
			d = -d
		}
		abs += d
		sq += d * d
	}
	assert.InDelta(t, abs/2, report.MeanAbsError, 1e-12)
	assert.InDelta(t, sq/2, report.Loss, 1e-12)

	_, err = train.Evaluate(net, nil)
	assert.True(t, errors.Is(err, train.ErrEmptyDataset))
}
