// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/axon-ml/axon/internal/nn"
)

// Module is implemented by anything that maps an input vector to an output vector.
type Module = nn.Module

// Network is a fully connected feed-forward network.
type Network = nn.Network

// Layer is an ordered group of units plus one bias unit.
type Layer = nn.Layer

// Unit is a source unit: an input or a bias.
type Unit = nn.Unit

// Neuron is a computed unit with an activation and a gradient.
type Neuron = nn.Neuron

// Connection is a weighted edge with a momentum term.
type Connection = nn.Connection

// NewNetwork builds a network from per-layer unit counts.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 4, 1}, nn.NewTanh(), nn.NewMSE(), nn.NewRand(42))
func NewNetwork(topology []int, activation Activation, criterion Criterion, rng *rand.Rand) (*Network, error) {
	return nn.NewNetwork(topology, activation, criterion, rng)
}

// NewRand returns a weight generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Activations

// Activation is the nonlinear transform applied by computed neurons.
type Activation = nn.Activation

// Identity passes the weighted sum through unchanged.
type Identity = nn.Identity

// NewIdentity creates a new Identity activation.
func NewIdentity() Identity {
	return nn.NewIdentity()
}

// Sigmoid is the logistic activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() Sigmoid {
	return nn.NewSigmoid()
}

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation.
func NewTanh() Tanh {
	return nn.NewTanh()
}

// ReLU is the rectified linear activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation.
func NewReLU() ReLU {
	return nn.NewReLU()
}

// ActivationByName returns the activation registered under name.
//
// Example:
//
//	a, err := nn.ActivationByName("tanh")
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Criteria

// Criterion compares a prediction against its target.
type Criterion = nn.Criterion

// MSE is the squared-error criterion.
type MSE = nn.MSE

// NewMSE creates a new squared-error criterion.
func NewMSE() MSE {
	return nn.NewMSE()
}

// MAE is the absolute-error criterion.
type MAE = nn.MAE

// NewMAE creates a new absolute-error criterion.
func NewMAE() MAE {
	return nn.NewMAE()
}

// Huber is quadratic near the target and linear far from it.
type Huber = nn.Huber

// NewHuber creates a Huber criterion with delta 1.
func NewHuber() Huber {
	return nn.NewHuber()
}

// CriterionByName returns the criterion registered under name.
func CriterionByName(name string) (Criterion, error) {
	return nn.CriterionByName(name)
}

// Errors

var (
	// ErrInvalidConfiguration is returned by NewNetwork for unusable topologies.
	ErrInvalidConfiguration = nn.ErrInvalidConfiguration

	// ErrInvalidArgument is returned for input or target vectors of the wrong length.
	ErrInvalidArgument = nn.ErrInvalidArgument

	// ErrCallOrder is returned by BackPropagate before any ComputeLoss.
	ErrCallOrder = nn.ErrCallOrder
)
