package nn

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Network is a fully connected feed-forward network.
//
// A training cycle for one sample is:
//
//	net.FeedForward(inputs)
//	loss, _ := net.ComputeLoss(targets)
//	net.BackPropagate()
//	net.Step(learningRate, momentum)
//
// Layers, units and connections are allocated once by NewNetwork and never
// resized. Only outputs, gradients, weights and momentum terms change.
type Network struct {
	topology   []int
	layers     []*Layer
	activation Activation
	criterion  Criterion

	targets []float64
	err     float64
	losses  []float64
}

// NewNetwork builds a network from a topology of per-layer unit counts.
//
// Layer 0 holds raw inputs; every later layer holds neurons using activation.
// Each layer gets one extra bias unit. Weights are drawn from U[-1, 1) using
// rng; a nil rng falls back to a clock-seeded generator.
//
// Returns ErrInvalidConfiguration if the topology is empty, contains a
// non-positive count, or activation/criterion is nil.
func NewNetwork(topology []int, activation Activation, criterion Criterion, rng *rand.Rand) (*Network, error) {
	if len(topology) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "the network can not be empty")
	}
	for i, size := range topology {
		if size <= 0 {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "layer %d has %d units", i, size)
		}
	}
	if activation == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "activation is nil")
	}
	if criterion == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "criterion is nil")
	}
	if rng == nil {
		rng = defaultRand()
	}

	n := &Network{
		topology:   append([]int(nil), topology...),
		layers:     make([]*Layer, len(topology)),
		activation: activation,
		criterion:  criterion,
		losses:     make([]float64, topology[len(topology)-1]),
	}

	last := len(topology) - 1
	for i, size := range topology {
		fanOut := 0
		if i < last {
			fanOut = topology[i+1]
		}
		if i == 0 {
			n.layers[i] = newInputLayer(size, fanOut, rng)
		} else {
			n.layers[i] = newLayer(size, fanOut, activation, rng)
		}
	}

	return n, nil
}

// FeedForward loads inputs into the input layer and propagates them forward.
//
// Returns ErrInvalidArgument, without touching the network, if len(inputs)
// differs from the input layer size.
func (n *Network) FeedForward(inputs []float64) error {
	input := n.layers[0]
	if len(inputs) != input.Size() {
		return errors.Wrapf(ErrInvalidArgument, "got %d inputs, want %d", len(inputs), input.Size())
	}

	for i, v := range inputs {
		input.inputs[i].output = v
	}

	for i := 1; i < len(n.layers); i++ {
		prev := n.layers[i-1]
		for _, neuron := range n.layers[i].neurons {
			neuron.feedForward(prev)
		}
	}

	return nil
}

// ComputeLoss scores the current output against targets.
//
// The loss is the mean of the criterion over the output units. Targets and
// loss are kept for BackPropagate and Error. Returns ErrInvalidArgument if
// len(targets) differs from the output layer size.
func (n *Network) ComputeLoss(targets []float64) (float64, error) {
	output := n.layers[len(n.layers)-1]
	if len(targets) != output.Size() {
		return 0, errors.Wrapf(ErrInvalidArgument, "got %d targets, want %d", len(targets), output.Size())
	}

	n.targets = append(n.targets[:0], targets...)
	for i, u := range output.units[:output.Size()] {
		n.losses[i] = n.criterion.Loss(targets[i], u.output)
	}
	n.err = stat.Mean(n.losses, nil)

	return n.err, nil
}

// BackPropagate computes the gradient of every computed neuron.
//
// Output gradients are seeded from the criterion and activation derivatives
// against the targets of the last ComputeLoss; hidden layers are then visited
// from the last hidden layer down to layer 1. The input layer gets no gradient.
//
// Returns ErrCallOrder if ComputeLoss has never succeeded.
func (n *Network) BackPropagate() error {
	if n.targets == nil {
		return errors.Wrap(ErrCallOrder, "back propagate before compute loss")
	}

	output := n.layers[len(n.layers)-1]
	for i, neuron := range output.neurons {
		neuron.outputGradient(n.targets[i], n.criterion)
	}

	for i := len(n.layers) - 2; i > 0; i-- {
		next := n.layers[i+1]
		for _, neuron := range n.layers[i].neurons {
			neuron.hiddenGradient(next)
		}
	}

	return nil
}

// Step applies one gradient descent update with momentum to every connection.
//
// For a unit u (bias included) and its connection c to neuron m:
//
//	delta = -learningRate * m.gradient * u.output + momentum * c.momentum
//	c.weight += delta
//	c.momentum = delta
func (n *Network) Step(learningRate, momentum float64) {
	for i := 0; i < len(n.layers)-1; i++ {
		next := n.layers[i+1]
		for _, u := range n.layers[i].units {
			for _, m := range next.neurons {
				c := &u.connections[m.index]
				c.update(-learningRate*m.gradient*u.output + momentum*c.momentum)
			}
		}
	}
}

// TrainSample runs one forward, loss, backward and update cycle.
//
// Returns the sample loss measured before the update.
func (n *Network) TrainSample(inputs, targets []float64, learningRate, momentum float64) (float64, error) {
	if err := n.FeedForward(inputs); err != nil {
		return 0, err
	}
	loss, err := n.ComputeLoss(targets)
	if err != nil {
		return 0, err
	}
	if err := n.BackPropagate(); err != nil {
		return 0, err
	}
	n.Step(learningRate, momentum)
	return loss, nil
}

// Predict runs a forward pass and returns a copy of the output values.
func (n *Network) Predict(inputs []float64) ([]float64, error) {
	if err := n.FeedForward(inputs); err != nil {
		return nil, err
	}
	return n.Output(), nil
}

// Output returns a copy of the non-bias output layer values.
func (n *Network) Output() []float64 {
	output := n.layers[len(n.layers)-1]
	return output.values(make([]float64, 0, output.Size()))
}

// Error returns the loss computed by the last ComputeLoss call.
func (n *Network) Error() float64 {
	return n.err
}

// Topology returns a copy of the per-layer unit counts, excluding bias units.
func (n *Network) Topology() []int {
	return append([]int(nil), n.topology...)
}

// Activation returns the activation shared by all computed neurons.
func (n *Network) Activation() Activation {
	return n.activation
}

// Criterion returns the loss criterion.
func (n *Network) Criterion() Criterion {
	return n.criterion
}

// NumLayers returns the number of layers, input and output included.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Layer returns layer i.
//
// Panics if i is out of range.
func (n *Network) Layer(i int) *Layer {
	return n.layers[i]
}

// NumWeights returns the number of connections, bias connections included.
func (n *Network) NumWeights() int {
	total := 0
	for i := 0; i < len(n.topology)-1; i++ {
		total += (n.topology[i] + 1) * n.topology[i+1]
	}
	return total
}
