// Package config loads training run descriptions from YAML.
//
// Example file:
//
//	topology: [2, 4, 1]
//	activation: tanh
//	criterion: mse
//	learning_rate: 0.3
//	momentum: 0.75
//	epochs: 750
//	seed: 1
//	dataset:
//	  name: xor
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid run config")

// datasetShapes lists the input and output widths of each dataset.
var datasetShapes = map[string][2]int{
	"xor":  {2, 1},
	"sine": {1, 1},
}

// Run describes a complete training run.
type Run struct {
	Topology     []int    `yaml:"topology"`
	Activation   string   `yaml:"activation"`
	Criterion    string   `yaml:"criterion"`
	LearningRate float64  `yaml:"learning_rate"`
	Momentum     float64  `yaml:"momentum"`
	Epochs       int      `yaml:"epochs"`
	TargetLoss   float64  `yaml:"target_loss"`
	Shuffle      bool     `yaml:"shuffle"`
	Seed         int64    `yaml:"seed"`
	Dataset      Dataset  `yaml:"dataset"`
	Schedule     Schedule `yaml:"schedule"`
}

// Dataset selects the training data.
type Dataset struct {
	Name    string  `yaml:"name"`
	Samples int     `yaml:"samples"`
	Noise   float64 `yaml:"noise"`
}

// Schedule selects the learning rate schedule.
type Schedule struct {
	Kind  string  `yaml:"kind"`
	Every int     `yaml:"every"`
	Gamma float64 `yaml:"gamma"`
}

// Default returns the XOR run: 2-4-1 tanh network, MSE, lr 0.3, momentum 0.75.
func Default() Run {
	return Run{
		Topology:     []int{2, 4, 1},
		Activation:   "tanh",
		Criterion:    "mse",
		LearningRate: 0.3,
		Momentum:     0.75,
		Epochs:       750,
		Seed:         1,
		Dataset: Dataset{
			Name:    "xor",
			Samples: 1500,
			Noise:   0.002,
		},
	}
}

// Parse decodes YAML on top of Default and validates the result.
//
// Unknown keys are rejected.
func Parse(data []byte) (Run, error) {
	run := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, errors.Wrap(err, "decode run config")
	}

	if err := run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, errors.Wrapf(err, "read run config %q", path)
	}
	run, err := Parse(data)
	if err != nil {
		return Run{}, errors.Wrapf(err, "load %q", path)
	}
	return run, nil
}

// Validate checks that every field names something buildable.
func (r Run) Validate() error {
	if len(r.Topology) == 0 {
		return errors.Wrap(ErrInvalidConfig, "topology is empty")
	}
	for i, size := range r.Topology {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "topology[%d] = %d", i, size)
		}
	}
	if _, err := nn.ActivationByName(r.Activation); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if _, err := nn.CriterionByName(r.Criterion); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if r.LearningRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "learning_rate %v must be positive", r.LearningRate)
	}
	if r.Momentum < 0 || r.Momentum >= 1 {
		return errors.Wrapf(ErrInvalidConfig, "momentum %v must be in [0, 1)", r.Momentum)
	}
	if r.Epochs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "epochs %d must be positive", r.Epochs)
	}
	if r.TargetLoss < 0 {
		return errors.Wrapf(ErrInvalidConfig, "target_loss %v must not be negative", r.TargetLoss)
	}
	if _, err := optim.ScheduleByName(r.Schedule.Kind, r.Schedule.Every, r.Schedule.Gamma); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	name := strings.ToLower(r.Dataset.Name)
	shape, ok := datasetShapes[name]
	if !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown dataset %q", r.Dataset.Name)
	}
	in, out := r.Topology[0], r.Topology[len(r.Topology)-1]
	if in != shape[0] || out != shape[1] {
		return errors.Wrapf(ErrInvalidConfig, "dataset %s needs %d inputs and %d outputs, topology has %d and %d",
			name, shape[0], shape[1], in, out)
	}
	if name == "sine" && r.Dataset.Samples <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "dataset samples %d must be positive", r.Dataset.Samples)
	}
	return nil
}

// Network builds the network described by r.
func (r Run) Network() (*nn.Network, error) {
	activation, err := nn.ActivationByName(r.Activation)
	if err != nil {
		return nil, err
	}
	criterion, err := nn.CriterionByName(r.Criterion)
	if err != nil {
		return nil, err
	}
	return nn.NewNetwork(r.Topology, activation, criterion, nn.NewRand(r.Seed))
}

// Optimizer builds the SGD optimizer described by r.
func (r Run) Optimizer() (*optim.SGD, error) {
	schedule, err := optim.ScheduleByName(r.Schedule.Kind, r.Schedule.Every, r.Schedule.Gamma)
	if err != nil {
		return nil, err
	}
	return optim.NewSGD(optim.SGDConfig{
		LR:       r.LearningRate,
		Momentum: r.Momentum,
		Schedule: schedule,
	})
}

// Marshal encodes r as YAML.
func (r Run) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "encode run config")
	}
	return data, nil
}
