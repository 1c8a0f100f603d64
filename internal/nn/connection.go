package nn

// Connection is a directed weighted edge from a unit to one neuron of the next layer.
//
// The momentum term holds the previous update so it can be blended into the next one.
// A Connection is owned by the unit that holds it in its fan-out.
type Connection struct {
	weight   float64
	momentum float64
}

// Weight returns the current connection weight.
func (c *Connection) Weight() float64 {
	return c.weight
}

// Momentum returns the delta applied by the most recent update.
func (c *Connection) Momentum() float64 {
	return c.momentum
}

// update applies delta to the weight and remembers it for the next step.
func (c *Connection) update(delta float64) {
	c.weight += delta
	c.momentum = delta
}
