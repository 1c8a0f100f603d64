package nn

import (
	"fmt"
	"math/rand"
)

// biasOutput is the constant output of every bias unit.
const biasOutput = 1.0

// Layer is an ordered group of units sharing a position in the topology,
// plus one bias unit.
//
// The input layer holds plain units; every other layer holds neurons.
// units lists every fan-out source in order with the bias last, so a
// neuron of the next layer can pull its weighted sum from a single slice.
type Layer struct {
	inputs  []*Unit   // input layer only
	neurons []*Neuron // hidden and output layers
	bias    *Unit
	units   []*Unit
}

// newInputLayer creates a layer of size raw input units.
func newInputLayer(size, fanOut int, rng *rand.Rand) *Layer {
	l := &Layer{
		inputs: make([]*Unit, size),
		units:  make([]*Unit, 0, size+1),
	}
	for i := range l.inputs {
		l.inputs[i] = newUnit(fanOut, i, rng)
		l.units = append(l.units, l.inputs[i])
	}
	l.addBias(size, fanOut, rng)
	l.checkAdjacency(fanOut)
	return l
}

// newLayer creates a layer of size neurons sharing activation.
func newLayer(size, fanOut int, activation Activation, rng *rand.Rand) *Layer {
	l := &Layer{
		neurons: make([]*Neuron, size),
		units:   make([]*Unit, 0, size+1),
	}
	for i := range l.neurons {
		l.neurons[i] = newNeuron(fanOut, i, activation, rng)
		l.units = append(l.units, &l.neurons[i].Unit)
	}
	l.addBias(size, fanOut, rng)
	l.checkAdjacency(fanOut)
	return l
}

func (l *Layer) addBias(index, fanOut int, rng *rand.Rand) {
	l.bias = newUnit(fanOut, index, rng)
	l.bias.output = biasOutput
	l.units = append(l.units, l.bias)
}

// checkAdjacency asserts that unit i sits at position i and owns exactly
// fanOut connections, one per neuron of the next layer.
func (l *Layer) checkAdjacency(fanOut int) {
	for i, u := range l.units {
		if u.index != i {
			panic(fmt.Sprintf("Layer: unit at position %d has index %d", i, u.index))
		}
		if len(u.connections) != fanOut {
			panic(fmt.Sprintf("Layer: unit %d owns %d connections, want %d", i, len(u.connections), fanOut))
		}
	}
}

// Size returns the number of non-bias units.
func (l *Layer) Size() int {
	return len(l.units) - 1
}

// Neurons returns the computed units of the layer (empty for the input layer).
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Units returns every unit of the layer, bias last.
func (l *Layer) Units() []*Unit {
	return l.units
}

// Bias returns the layer's bias unit.
func (l *Layer) Bias() *Unit {
	return l.bias
}

// values appends the non-bias outputs to dst.
func (l *Layer) values(dst []float64) []float64 {
	for _, u := range l.units[:l.Size()] {
		dst = append(dst, u.output)
	}
	return dst
}
