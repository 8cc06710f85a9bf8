package autodiff

import "fmt"

// Backpropagate propagates seed from root back through the graph,
// accumulating derivatives into every reachable leaf.
//
// The traversal order is computed once, up front: a topological order over
// the subgraph reachable from root via History input edges, consumers
// first. A node's own chain rule therefore runs only after every consumer
// has contributed its share to the node's pending derivative — the
// discipline that makes shared sub-expressions (fan-in) sum correctly
// instead of keeping only the last contribution.
//
// Pending derivatives are combined strictly by Space.Add, never assigned
// over. Constants never enter the traversal and never receive accumulation.
//
// Backpropagate is single-threaded and runs to completion; concurrent
// calls on overlapping graphs require external serialization. Traversal
// uses an explicit worklist, so graph depth does not grow the stack.
func Backpropagate(root *Node, seed any) error {
	order := topologicalOrder(root)

	pending := make(map[uint64]any, len(order))
	pending[root.id] = seed

	for _, node := range order {
		d, ok := pending[node.id]
		if !ok {
			continue
		}
		if node.IsLeaf() {
			node.AccumulateDerivative(d)
			continue
		}
		contribs, err := node.history.BackpropStep(d)
		if err != nil {
			return fmt.Errorf("backpropagate %s: %w", node.name, err)
		}
		for _, c := range contribs {
			if existing, ok := pending[c.Node.id]; ok {
				pending[c.Node.id] = c.Node.space.Add(existing, c.Delta)
			} else {
				pending[c.Node.id] = c.Delta
			}
		}
	}
	return nil
}

// topologicalOrder returns the nodes reachable from root in consumers-first
// order: every node appears after all nodes that consume it.
//
// Implemented as an iterative depth-first search (explicit frame stack, no
// recursion) recording reverse post-order. Constants are skipped at the
// edge. Cycles are a forbidden precondition rather than a runtime check:
// Apply can only reference operands that already exist, so a well-formed
// construction process cannot create one.
func topologicalOrder(root *Node) []*Node {
	type frame struct {
		node *Node
		next int
	}

	visited := map[uint64]bool{root.id: true}
	var order []*Node
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		var inputs []any
		if f.node.history != nil {
			inputs = f.node.history.inputs
		}

		descended := false
		for f.next < len(inputs) {
			in := inputs[f.next]
			f.next++
			if IsConstant(in) {
				continue
			}
			child := in.(*Node)
			if visited[child.id] {
				continue
			}
			visited[child.id] = true
			stack = append(stack, frame{node: child})
			descended = true
			break
		}
		if descended {
			continue
		}

		// Post-order: all inputs finished.
		order = append(order, f.node)
		stack = stack[:len(stack)-1]
	}

	// Reverse post-order puts consumers before the nodes they consume.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
