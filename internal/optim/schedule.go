package optim

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Schedule maps a base learning rate and a completed-epoch count to the
// learning rate for the next epoch.
type Schedule interface {
	LR(base float64, epoch int) float64
}

// Constant keeps the base learning rate.
type Constant struct{}

// LR returns base.
func (Constant) LR(base float64, _ int) float64 {
	return base
}

// StepDecay multiplies the learning rate by Gamma every Every epochs.
//
//	lr = base * Gamma^(epoch / Every)
type StepDecay struct {
	Every int
	Gamma float64
}

// LR returns the decayed learning rate.
func (s StepDecay) LR(base float64, epoch int) float64 {
	if s.Every <= 0 {
		return base
	}
	return base * math.Pow(s.Gamma, float64(epoch/s.Every))
}

// ScheduleByName builds a schedule from its name.
//
// "constant" (or "") ignores every and gamma; "step" builds a StepDecay.
func ScheduleByName(name string, every int, gamma float64) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "constant":
		return Constant{}, nil
	case "step":
		if every <= 0 {
			return nil, errors.Wrapf(ErrInvalidHyperparameter, "step schedule needs every > 0, got %d", every)
		}
		if gamma <= 0 || gamma > 1 {
			return nil, errors.Wrapf(ErrInvalidHyperparameter, "step schedule gamma %v must be in (0, 1]", gamma)
		}
		return StepDecay{Every: every, Gamma: gamma}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "unknown schedule %q", name)
	}
}
