package autodiff

import (
	"fmt"
	"reflect"
)

// Operation is the contract a concrete differentiable operation implements.
// Implementations are stateless and shared; all forward-to-backward state
// crosses through the Context.
type Operation interface {
	// Forward computes the operation's result from raw payloads. It may
	// stash state for the backward pass via ctx.SaveForBackward.
	Forward(ctx *Context, raw ...any) (any, error)

	// Backward converts an upstream derivative into local gradients, one
	// per forward operand, in operand order. The returned slice always has
	// fixed arity: length 1 for unary operations, never a bare value.
	Backward(ctx *Context, dOutput any) ([]any, error)

	// Variable wraps a forward result and optional provenance into the
	// concrete node kind for this operation's payload.
	Variable(value any, history *History) *Node

	// PayloadType declares the operation's payload type, checked against
	// every Forward result at runtime.
	PayloadType() reflect.Type
}

// Contribution is one (operand, derivative) pair emitted by a chain-rule
// step. Delta has already been through the operand's Expand hook.
type Contribution struct {
	Node  *Node
	Delta any
}

// Apply is the graph-construction entry point: it runs the operation's
// forward pass over the operands' raw payloads and wraps the result in a
// new node, recording provenance when any operand requires differentiation.
//
// Operands may be *Node values or raw constants of the payload type.
// Constants never enter the backward traversal.
func Apply(op Operation, operands ...any) (*Node, error) {
	raw := make([]any, len(operands))
	needGrad := false
	for i, v := range operands {
		if node, ok := v.(*Node); ok {
			if node.history != nil || node.requiresGrad {
				needGrad = true
			}
			node.uses++
			raw[i] = node.value
		} else {
			raw[i] = v
		}
	}

	ctx := NewContext(!needGrad)
	out, err := op.Forward(ctx, raw...)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	if got, want := reflect.TypeOf(out), op.PayloadType(); got != want {
		return nil, fmt.Errorf("forward returned %v, want %v: %w", got, want, ErrTypeMismatch)
	}

	var history *History
	if needGrad {
		history = &History{op: op, ctx: ctx, inputs: operands}
	}
	return op.Variable(out, history), nil
}

// MustApply is Apply for infallible call sites; it panics on error.
// Every Apply error is a programmer error, so convenience wrappers in
// concrete payload packages build on this.
func MustApply(op Operation, operands ...any) *Node {
	n, err := Apply(op, operands...)
	if err != nil {
		panic(fmt.Sprintf("autodiff: apply %T: %v", op, err))
	}
	return n
}

// chainRule performs one step of derivative propagation: it invokes the
// operation's backward pass, validates its arity against the recorded
// operand list, drops constants, and pairs each remaining operand with its
// expanded local derivative, preserving input order.
func chainRule(op Operation, ctx *Context, inputs []any, dOutput any) ([]Contribution, error) {
	grads, err := op.Backward(ctx, dOutput)
	if err != nil {
		return nil, fmt.Errorf("backward: %w", err)
	}
	if len(grads) != len(inputs) {
		return nil, fmt.Errorf("backward returned %d gradients for %d inputs: %w",
			len(grads), len(inputs), ErrArityMismatch)
	}

	out := make([]Contribution, 0, len(inputs))
	for i, in := range inputs {
		if IsConstant(in) {
			continue
		}
		node := in.(*Node)
		out = append(out, Contribution{Node: node, Delta: node.Expand(grads[i])})
	}
	return out, nil
}
