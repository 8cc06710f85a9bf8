package autodiff

// History is the immutable provenance record of a derived node: the
// operation that produced it, the context from that invocation, and the
// ordered operand list as originally passed to Apply (nodes and constants
// interleaved, not raw payloads — constant filtering during the chain rule
// needs to tell them apart).
//
// A History is created only when at least one operand required
// differentiation, and is owned exclusively by the one node it documents.
type History struct {
	op     Operation
	ctx    *Context
	inputs []any
}

// Operation returns the operation that produced the owning node.
func (h *History) Operation() Operation { return h.op }

// Context returns the context captured during the forward pass.
func (h *History) Context() *Context { return h.ctx }

// Inputs returns the original ordered operand list.
func (h *History) Inputs() []any { return h.inputs }

// BackpropStep runs one step of backpropagation: it delegates to the
// owning operation's chain rule and returns its result unchanged.
func (h *History) BackpropStep(dOutput any) ([]Contribution, error) {
	return chainRule(h.op, h.ctx, h.inputs, dOutput)
}
