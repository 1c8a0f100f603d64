// Package optim implements the weight-update strategy used to train axon networks.
//
// This package provides:
//   - Optimizer interface: what the training loop drives after each backward pass
//   - SGD: gradient descent with momentum over nn.Network connections
//   - Schedule: learning rate schedules (Constant, StepDecay)
//
// Example usage:
//
//	optimizer, err := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.3,
//	    Momentum: 0.75,
//	})
//
//	for epoch := range epochs {
//	    for _, s := range samples {
//	        net.FeedForward(s.Inputs)
//	        net.ComputeLoss(s.Targets)
//	        net.BackPropagate()
//	        optimizer.Step(net)
//	    }
//	    optimizer.EndEpoch()
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/axon-ml/axon/internal/nn"
)

// ErrInvalidHyperparameter is returned for out-of-range optimizer settings.
var ErrInvalidHyperparameter = errors.New("invalid hyperparameter")

// Optimizer is the base interface for optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply the update for the gradients of the last backward pass
//   - EndEpoch: Advance per-epoch state such as learning rate schedules
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates every connection of net in place.
	//
	// Must be called after net.BackPropagate for the same sample.
	Step(net *nn.Network)

	// EndEpoch signals that one pass over the dataset has finished.
	EndEpoch()

	// GetLR returns the current learning rate.
	GetLR() float64
}
