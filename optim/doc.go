// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the weight-update strategy for axon networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Schedules: Constant and StepDecay learning rates
//   - Optimizer interface for custom update drivers
//
// # Basic Usage
//
//	import (
//	    "github.com/axon-ml/axon/nn"
//	    "github.com/axon-ml/axon/optim"
//	)
//
//	func main() {
//	    net, _ := nn.NewNetwork([]int{2, 4, 1}, nn.NewTanh(), nn.NewMSE(), nn.NewRand(1))
//	    optimizer, _ := optim.NewSGD(optim.SGDConfig{LR: 0.3, Momentum: 0.75})
//
//	    for epoch := 0; epoch < 750; epoch++ {
//	        for _, s := range samples {
//	            net.FeedForward(s.Inputs)
//	            net.ComputeLoss(s.Targets)
//	            net.BackPropagate()
//	            optimizer.Step(net)
//	        }
//	        optimizer.EndEpoch()
//	    }
//	}
//
// # Update Rule
//
// Every connection keeps the delta of its previous update:
//
//	delta = -lr * gradient * input + momentum * previous_delta
//	weight += delta
//
// # Learning Rate Schedules
//
//	optimizer, _ := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	    Schedule: optim.StepDecay{Every: 50, Gamma: 0.5},
//	})
package optim
