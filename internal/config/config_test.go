package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	run := Default()
	require.NoError(t, run.Validate())

	net, err := run.Network()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1}, net.Topology())
	assert.Equal(t, "tanh", net.Activation().Name())

	sgd, err := run.Optimizer()
	require.NoError(t, err)
	assert.Equal(t, 0.3, sgd.GetLR())
	assert.Equal(t, 0.75, sgd.Momentum())
}

func TestParseOverridesDefaults(t *testing.T) {
	run, err := Parse([]byte(`
topology: [1, 16, 8, 1]
activation: sigmoid
learning_rate: 0.05
epochs: 20
dataset:
  name: sine
  samples: 200
schedule:
  kind: step
  every: 5
  gamma: 0.5
`))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 16, 8, 1}, run.Topology)
	assert.Equal(t, "sigmoid", run.Activation)
	assert.Equal(t, "mse", run.Criterion)
	assert.Equal(t, 0.05, run.LearningRate)
	assert.Equal(t, 0.75, run.Momentum)
	assert.Equal(t, 20, run.Epochs)
	assert.Equal(t, Dataset{Name: "sine", Samples: 200, Noise: 0.002}, run.Dataset)
	assert.Equal(t, Schedule{Kind: "step", Every: 5, Gamma: 0.5}, run.Schedule)
}

func TestParseEmptyDocument(t *testing.T) {
	run, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), run)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("layers: [2, 1]\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Run)
	}{
		{"empty topology", func(r *Run) { r.Topology = nil }},
		{"zero layer", func(r *Run) { r.Topology = []int{2, 0, 1} }},
		{"unknown activation", func(r *Run) { r.Activation = "swish" }},
		{"unknown criterion", func(r *Run) { r.Criterion = "hinge" }},
		{"zero learning rate", func(r *Run) { r.LearningRate = 0 }},
		{"momentum one", func(r *Run) { r.Momentum = 1 }},
		{"no epochs", func(r *Run) { r.Epochs = 0 }},
		{"negative target", func(r *Run) { r.TargetLoss = -1 }},
		{"bad schedule", func(r *Run) { r.Schedule = Schedule{Kind: "step"} }},
		{"unknown dataset", func(r *Run) { r.Dataset.Name = "mnist" }},
		{"dataset shape", func(r *Run) { r.Topology = []int{3, 4, 1} }},
		{"sine samples", func(r *Run) {
			r.Topology = []int{1, 4, 1}
			r.Dataset = Dataset{Name: "sine"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := Default()
			tt.mutate(&run)
			assert.True(t, errors.Is(run.Validate(), ErrInvalidConfig))
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	run := Default()
	run.Epochs = 42
	run.Shuffle = true

	data, err := run.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, run, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
