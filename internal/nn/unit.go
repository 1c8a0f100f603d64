package nn

import (
	"math/rand"
)

// Unit is a source of values for the next layer.
//
// Every unit owns its outgoing connections: connections[j] targets neuron j of
// the next layer. Input units and the bias unit are plain Units. They have no
// activation, so there is nothing to compute on them: their output is set
// from outside (inputs) or fixed at construction (bias).
type Unit struct {
	output      float64
	connections []Connection
	index       int
}

// newUnit creates a unit at position index with fanOut connections drawn from rng.
func newUnit(fanOut, index int, rng *rand.Rand) *Unit {
	u := &Unit{
		index:       index,
		connections: make([]Connection, fanOut),
	}
	for j := range u.connections {
		u.connections[j].weight = Uniform(rng, weightBound)
	}
	return u
}

// Output returns the unit's current output value.
func (u *Unit) Output() float64 {
	return u.output
}

// Index returns the unit's position within its layer.
func (u *Unit) Index() int {
	return u.index
}

// FanOut returns the number of outgoing connections.
func (u *Unit) FanOut() int {
	return len(u.connections)
}

// Connection returns the connection to neuron j of the next layer.
//
// Panics if j is out of range.
func (u *Unit) Connection(j int) *Connection {
	return &u.connections[j]
}

// Neuron is a computed unit: its output is the activation of the weighted sum
// of the previous layer, and it carries a gradient during the backward pass.
type Neuron struct {
	Unit
	gradient   float64
	activation Activation
}

// newNeuron creates a computed unit sharing activation with its layer.
func newNeuron(fanOut, index int, activation Activation, rng *rand.Rand) *Neuron {
	return &Neuron{
		Unit:       *newUnit(fanOut, index, rng),
		activation: activation,
	}
}

// Gradient returns the gradient computed by the last backward pass.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}

// feedForward pulls the weighted sum from every unit of prev, bias included.
func (n *Neuron) feedForward(prev *Layer) {
	var sum float64
	for _, u := range prev.units {
		sum += u.output * u.connections[n.index].weight
	}
	n.output = n.activation.Forward(sum)
}

// outputGradient seeds the gradient of an output neuron.
func (n *Neuron) outputGradient(target float64, criterion Criterion) {
	n.gradient = criterion.Derivative(target, n.output) * n.activation.Derivative(n.output)
}

// hiddenGradient pulls gradients from the computed neurons of next.
func (n *Neuron) hiddenGradient(next *Layer) {
	var dow float64
	for _, m := range next.neurons {
		dow += n.connections[m.index].weight * m.gradient
	}
	n.gradient = dow * n.activation.Derivative(n.output)
}
