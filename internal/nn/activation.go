package nn

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Activation is the nonlinear transform applied by every computed neuron.
//
// Derivative is evaluated on the neuron's OUTPUT, not on its weighted input sum.
// An implementation must express its derivative in terms of f(x); the backward
// pass never sees the pre-activation value.
type Activation interface {
	// Name returns the lookup name of the activation.
	Name() string

	// Forward applies the activation to a weighted input sum.
	Forward(x float64) float64

	// Derivative returns f'(x) given output = f(x).
	Derivative(output float64) float64
}

// Identity passes the weighted sum through unchanged.
//
// Useful for regression outputs.
type Identity struct{}

// NewIdentity creates a new Identity activation.
func NewIdentity() Identity {
	return Identity{}
}

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Forward returns x.
func (Identity) Forward(x float64) float64 { return x }

// Derivative returns 1.
func (Identity) Derivative(float64) float64 { return 1.0 }

// Sigmoid is the logistic activation.
//
// Applies σ(x) = 1 / (1 + exp(-x)), which squashes values into (0, 1).
// Its derivative in output form is o * (1 - o).
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() Sigmoid {
	return Sigmoid{}
}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Forward applies σ(x) = 1 / (1 + exp(-x)).
func (Sigmoid) Forward(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative returns o * (1 - o).
func (Sigmoid) Derivative(output float64) float64 {
	return output * (1.0 - output)
}

// Tanh is the hyperbolic tangent activation.
//
// Squashes values into (-1, 1). The derivative is taken from the output,
// 1 - o², which equals 1 - tanh(x)² because no scaling is applied on either side.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 4, 1}, nn.NewTanh(), nn.NewMSE(), nn.NewRand(1))
type Tanh struct{}

// NewTanh creates a new Tanh activation.
func NewTanh() Tanh {
	return Tanh{}
}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Forward applies tanh(x).
func (Tanh) Forward(x float64) float64 {
	return math.Tanh(x)
}

// Derivative returns 1 - o².
func (Tanh) Derivative(output float64) float64 {
	return 1.0 - output*output
}

// ReLU is the rectified linear activation, f(x) = max(0, x).
//
// The output is positive exactly when the input was, so the derivative
// is recoverable from the output alone.
type ReLU struct{}

// NewReLU creates a new ReLU activation.
func NewReLU() ReLU {
	return ReLU{}
}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Forward applies max(0, x).
func (ReLU) Forward(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for positive outputs and 0 otherwise.
func (ReLU) Derivative(output float64) float64 {
	if output > 0 {
		return 1.0
	}
	return 0
}

var activations = map[string]func() Activation{
	"identity": func() Activation { return Identity{} },
	"linear":   func() Activation { return Identity{} },
	"sigmoid":  func() Activation { return Sigmoid{} },
	"logistic": func() Activation { return Sigmoid{} },
	"tanh":     func() Activation { return Tanh{} },
	"relu":     func() Activation { return ReLU{} },
}

// ActivationByName returns the activation registered under name.
//
// Lookup is case-insensitive. "linear" and "logistic" are accepted as aliases
// for "identity" and "sigmoid".
func ActivationByName(name string) (Activation, error) {
	f, ok := activations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownActivation, "%q", name)
	}
	return f(), nil
}
