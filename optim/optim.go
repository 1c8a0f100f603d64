// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/axon-ml/axon/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer, err := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.3,
//	    Momentum: 0.75,
//	})
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}

// Schedules

// Schedule maps an epoch count to a learning rate.
type Schedule = optim.Schedule

// Constant keeps the base learning rate.
type Constant = optim.Constant

// StepDecay multiplies the learning rate by Gamma every Every epochs.
type StepDecay = optim.StepDecay

// ErrInvalidHyperparameter is returned for out-of-range optimizer settings.
var ErrInvalidHyperparameter = optim.ErrInvalidHyperparameter
