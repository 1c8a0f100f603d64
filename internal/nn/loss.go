package nn

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Criterion compares a single prediction against its target.
//
// Network averages Loss over the output neurons and seeds the backward pass
// with Derivative, the partial derivative of the per-unit loss with respect
// to the prediction (up to a constant factor).
type Criterion interface {
	// Name returns the lookup name of the criterion.
	Name() string

	// Loss returns the error of prediction against target.
	Loss(target, prediction float64) float64

	// Derivative returns the gradient of the loss with respect to prediction.
	Derivative(target, prediction float64) float64
}

// MSE is the squared-error criterion.
//
// Loss = (target - prediction)², averaged over output units by the network.
// The derivative drops the constant factor 2: prediction - target.
//
// Example:
//
//	mse := nn.NewMSE()
//	mse.Loss(1.0, 0.0)        // 1.0
//	mse.Derivative(1.0, 0.5)  // -0.5
type MSE struct{}

// NewMSE creates a new squared-error criterion.
func NewMSE() MSE {
	return MSE{}
}

// Name returns "mse".
func (MSE) Name() string { return "mse" }

// Loss returns (target - prediction)².
func (MSE) Loss(target, prediction float64) float64 {
	d := target - prediction
	return d * d
}

// Derivative returns prediction - target.
func (MSE) Derivative(target, prediction float64) float64 {
	return prediction - target
}

// MAE is the absolute-error criterion, |target - prediction|.
type MAE struct{}

// NewMAE creates a new absolute-error criterion.
func NewMAE() MAE {
	return MAE{}
}

// Name returns "mae".
func (MAE) Name() string { return "mae" }

// Loss returns |target - prediction|.
func (MAE) Loss(target, prediction float64) float64 {
	return math.Abs(target - prediction)
}

// Derivative returns the sign of prediction - target, or 0 when they are equal.
func (MAE) Derivative(target, prediction float64) float64 {
	switch {
	case prediction > target:
		return 1.0
	case prediction < target:
		return -1.0
	default:
		return 0
	}
}

// DefaultHuberDelta is the threshold used by NewHuber.
const DefaultHuberDelta = 1.0

// Huber is quadratic for small errors and linear for large ones.
//
//	|d| <= δ:  ½d²
//	|d| >  δ:  δ(|d| - ½δ)
//
// where d = prediction - target. The derivative is d clipped to [-δ, δ].
type Huber struct {
	Delta float64
}

// NewHuber creates a Huber criterion with DefaultHuberDelta.
func NewHuber() Huber {
	return Huber{Delta: DefaultHuberDelta}
}

// Name returns "huber".
func (Huber) Name() string { return "huber" }

// Loss returns the Huber loss of prediction against target.
func (h Huber) Loss(target, prediction float64) float64 {
	d := math.Abs(prediction - target)
	if d <= h.Delta {
		return 0.5 * d * d
	}
	return h.Delta * (d - 0.5*h.Delta)
}

// Derivative returns prediction - target clipped to [-δ, δ].
func (h Huber) Derivative(target, prediction float64) float64 {
	d := prediction - target
	return math.Max(-h.Delta, math.Min(h.Delta, d))
}

var criteria = map[string]func() Criterion{
	"mse":   func() Criterion { return MSE{} },
	"mae":   func() Criterion { return MAE{} },
	"huber": func() Criterion { return NewHuber() },
}

// CriterionByName returns the criterion registered under name (case-insensitive).
func CriterionByName(name string) (Criterion, error) {
	f, ok := criteria[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCriterion, "%q", name)
	}
	return f(), nil
}
