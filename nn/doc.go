// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small fully connected feed-forward network engine.
//
// # Overview
//
// This package contains:
//   - Network: layers of units with per-unit weighted connections
//   - Activations: Identity, Sigmoid, Tanh, ReLU
//   - Criteria: MSE, MAE, Huber
//   - Initialization: seedable uniform weights in [-1, 1)
//
// # Basic Usage
//
//	import "github.com/axon-ml/axon/nn"
//
//	func main() {
//	    net, err := nn.NewNetwork([]int{2, 4, 1}, nn.NewTanh(), nn.NewMSE(), nn.NewRand(1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One training cycle
//	    net.FeedForward([]float64{0, 1})
//	    loss, _ := net.ComputeLoss([]float64{1})
//	    net.BackPropagate()
//	    net.Step(0.3, 0.75)
//	}
//
// # Activations
//
// The activation derivative is evaluated on the unit's output rather than
// its weighted input, so Tanh uses 1 - o² and Sigmoid uses o(1 - o):
//
//	tanh := nn.NewTanh()
//	sigmoid := nn.NewSigmoid()
//	a, err := nn.ActivationByName("relu")
//
// # Criteria
//
// MSE: squared error, averaged over output units
//
//	criterion := nn.NewMSE()
//
// MAE and Huber are available for targets with outliers:
//
//	criterion := nn.NewHuber()
//
// # Concurrency
//
// A Network is not safe for concurrent use. Construction, forward and
// backward passes and updates all run synchronously on the caller's goroutine.
package nn
