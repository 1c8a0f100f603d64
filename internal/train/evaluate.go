package train

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/axon-ml/axon/internal/nn"
)

// Prediction is the network output for one sample.
type Prediction struct {
	Inputs  []float64
	Targets []float64
	Outputs []float64
}

// Report summarizes how a network performs on a dataset.
type Report struct {
	Predictions  []Prediction
	Loss         float64 // mean criterion loss over samples
	MeanAbsError float64 // mean |output - target| over every output value
}

// Evaluate runs samples through net without updating weights.
//
// It calls ComputeLoss, so the network's last targets and error reflect the
// final sample afterwards.
func Evaluate(net *nn.Network, samples []Sample) (*Report, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}

	r := &Report{Predictions: make([]Prediction, 0, len(samples))}
	losses := make([]float64, len(samples))
	var absSum float64
	var count int

	for i, s := range samples {
		out, err := net.Predict(s.Inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		loss, err := net.ComputeLoss(s.Targets)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}

		losses[i] = loss
		absSum += floats.Distance(out, s.Targets, 1)
		count += len(out)
		r.Predictions = append(r.Predictions, Prediction{
			Inputs:  s.Inputs,
			Targets: s.Targets,
			Outputs: out,
		})
	}

	r.Loss = stat.Mean(losses, nil)
	r.MeanAbsError = absSum / float64(count)
	return r, nil
}
