// Package nn implements the axon feed-forward network engine.
//
// This package provides the building blocks of a small fully connected network:
//   - Connection: weighted edge with a momentum term
//   - Activation: Identity, Sigmoid, Tanh, ReLU
//   - Criterion: MSE, MAE, Huber
//   - Unit and Neuron: source units (inputs, bias) and computed units
//   - Layer: ordered neurons plus one bias unit
//   - Network: forward pass, loss, backward pass and the momentum update
//
// The engine is single-threaded and keeps no locks. Callers that share a
// Network across goroutines must synchronize externally.
package nn

// Module is implemented by anything that maps an input vector to an output vector.
//
// Network satisfies it; training drivers use it for inference-only code paths.
type Module interface {
	// Predict runs a forward pass and returns a copy of the output values.
	Predict(inputs []float64) ([]float64, error)

	// Topology returns the per-layer unit counts, excluding bias units.
	Topology() []int
}

var _ Module = (*Network)(nil)
