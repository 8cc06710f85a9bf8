// Package autodiff implements the graph core of reverse-mode automatic
// differentiation over opaque payloads.
//
// The engine never performs numeric math itself. Concrete payload kinds
// (scalars, matrices, ...) plug in through two surfaces:
//
//   - Space: the arithmetic capability of one payload kind (zero, add,
//     broadcast reduction). One implementation per kind.
//   - Operation: a forward/backward pair for one differentiable operation.
//
// Graph construction happens through Apply, which records provenance in a
// History whenever an operand is differentiable. Backpropagate later walks
// that provenance in topological order and accumulates derivatives into
// every reachable leaf.
//
// Usage:
//
//	x := autodiff.NewLeaf(2.0, space)
//	x.RequireGrad()
//	y, _ := autodiff.Apply(squareOp{}, x)
//	_ = y.Backward(nil) // seed defaults to space.One
//	fmt.Println(x.Derivative()) // 4.0
package autodiff

import (
	"fmt"
	"sync/atomic"
)

// nodeCount is the process-wide id allocator. Ids are monotonically
// increasing and never reused; identity is load-bearing for the
// derivative accumulation map.
var nodeCount atomic.Uint64

// Space is the arithmetic capability of one concrete payload kind.
// The engine consumes it generically and never inspects payloads directly.
type Space interface {
	// Zero returns the additive identity shaped like the given payload.
	Zero(like any) any

	// One returns the default backward seed shaped like the given payload.
	One(like any) any

	// Add combines two derivative contributions. It must not mutate
	// either argument's aliased storage observably outside the result.
	Add(a, b any) any

	// Expand reduces a broadcast gradient back to the shape of value.
	// Kinds without broadcasting return delta unchanged.
	Expand(value, delta any) any
}

// Node is one vertex of the computation DAG.
//
// A Node wraps a single computed or user-supplied payload. Nodes are shared,
// never copied: a node may be referenced by arbitrarily many History records
// belonging to downstream nodes, which is what makes the graph a DAG rather
// than a tree.
type Node struct {
	id           uint64
	value        any
	history      *History
	derivative   any
	name         string
	space        Space
	uses         int
	requiresGrad bool
}

// NewNode creates a node from a payload, optional provenance and its
// payload kind's space. A nil history marks the node as a leaf.
func NewNode(value any, history *History, space Space) *Node {
	id := nodeCount.Add(1)
	return &Node{
		id:      id,
		value:   value,
		history: history,
		name:    fmt.Sprintf("node%d", id),
		space:   space,
	}
}

// NewLeaf creates a user-supplied leaf node.
func NewLeaf(value any, space Space) *Node {
	return NewNode(value, nil, space)
}

// ID returns the node's process-wide unique id.
func (n *Node) ID() uint64 { return n.id }

// Value returns the node's payload.
func (n *Node) Value() any { return n.value }

// History returns the provenance record, or nil for leaves.
func (n *Node) History() *History { return n.history }

// Name returns the debug label.
func (n *Node) Name() string { return n.name }

// SetName sets the debug label.
func (n *Node) SetName(name string) { n.name = name }

// Space returns the payload kind's arithmetic capability.
func (n *Node) Space() Space { return n.space }

// Uses returns how many times this node has been consumed as an operand.
// Informational only.
func (n *Node) Uses() int { return n.uses }

// IsLeaf reports whether the node was created by the user rather than
// produced by an operation. Holds exactly when History() is nil.
func (n *Node) IsLeaf() bool { return n.history == nil }

// RequireGrad marks a leaf for gradient tracking. Operations consuming a
// grad-tracked node record provenance even when no operand is derived.
func (n *Node) RequireGrad() { n.requiresGrad = true }

// RequiresGrad reports whether the node has been marked for gradient
// tracking via RequireGrad.
func (n *Node) RequiresGrad() bool { return n.requiresGrad }

// Derivative returns the accumulated derivative, or nil if no contribution
// has arrived yet.
func (n *Node) Derivative() any { return n.derivative }

// AccumulateDerivative adds delta into the node's persistent derivative
// accumulator, initializing it to the payload zero on first contribution.
// This is the only way the accumulator changes after construction.
//
// The engine only ever targets leaves, but accumulation is not restricted
// to them: consumers may seed interior nodes directly.
func (n *Node) AccumulateDerivative(delta any) {
	if n.derivative == nil {
		n.derivative = n.space.Zero(n.value)
	}
	n.derivative = n.space.Add(n.derivative, delta)
}

// ZeroDerivative resets the accumulator to the payload zero.
func (n *Node) ZeroDerivative() {
	n.derivative = n.space.Zero(n.value)
}

// Zero returns the payload type's additive identity for this node.
func (n *Node) Zero() any {
	return n.space.Zero(n.value)
}

// Expand reduces a broadcast gradient back to this node's shape before
// accumulation. Identity for payload kinds without broadcasting.
func (n *Node) Expand(delta any) any {
	return n.space.Expand(n.value, delta)
}

// Backward propagates a derivative from this node back to every reachable
// leaf. A nil seed defaults to the payload one (1.0 for scalars).
func (n *Node) Backward(seed any) error {
	if seed == nil {
		seed = n.space.One(n.value)
	}
	return Backpropagate(n, seed)
}

// IsConstant reports whether an operand is excluded from differentiation:
// anything that is not a *Node, or a leaf node that was never marked for
// gradient tracking. A grad-tracked leaf is NOT constant; it still needs
// derivative accumulation.
func IsConstant(v any) bool {
	n, ok := v.(*Node)
	if !ok {
		return true
	}
	return n.history == nil && !n.requiresGrad
}
