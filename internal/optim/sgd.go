package optim

import (
	"github.com/pkg/errors"

	"github.com/axon-ml/axon/internal/nn"
)

// SGD implements stochastic gradient descent with momentum.
//
// Update rule, per connection from unit u to neuron m:
//
//	delta = -lr * m.gradient * u.output + momentum * previous_delta
//	weight += delta
//
// The previous delta lives on the connection itself, so one SGD value can
// drive several networks without keeping per-network state.
//
// Example:
//
//	optimizer, err := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.3,
//	    Momentum: 0.75,
//	})
type SGD struct {
	baseLR   float64
	lr       float64
	momentum float64
	schedule Schedule
	epoch    int
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64  // Learning rate (default: 0.01, must be > 0)
	Momentum float64  // Momentum factor (default: 0.0, range: [0, 1))
	Schedule Schedule // Learning rate schedule (default: Constant)
}

// NewSGD creates a new SGD optimizer.
//
// Returns ErrInvalidHyperparameter if LR is negative or Momentum is outside [0, 1).
func NewSGD(config SGDConfig) (*SGD, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Schedule == nil {
		config.Schedule = Constant{}
	}

	if config.LR < 0 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "learning rate %v must be positive", config.LR)
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "momentum %v must be in [0, 1)", config.Momentum)
	}

	return &SGD{
		baseLR:   config.LR,
		lr:       config.LR,
		momentum: config.Momentum,
		schedule: config.Schedule,
	}, nil
}

// Step applies one momentum update to every connection of net.
func (s *SGD) Step(net *nn.Network) {
	net.Step(s.lr, s.momentum)
}

// EndEpoch advances the schedule by one epoch.
func (s *SGD) EndEpoch() {
	s.epoch++
	s.lr = s.schedule.LR(s.baseLR, s.epoch)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// The new value also becomes the base the schedule decays from.
func (s *SGD) SetLR(lr float64) {
	s.baseLR = lr
	s.lr = s.schedule.LR(lr, s.epoch)
}

// Momentum returns the momentum factor.
func (s *SGD) Momentum() float64 {
	return s.momentum
}

// Epoch returns the number of completed epochs.
func (s *SGD) Epoch() int {
	return s.epoch
}
