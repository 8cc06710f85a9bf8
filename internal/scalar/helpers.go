package scalar

import "fmt"

func unary(raw []any) (float64, error) {
	if len(raw) != 1 {
		return 0, fmt.Errorf("want 1 operand, got %d", len(raw))
	}
	a, ok := raw[0].(float64)
	if !ok {
		return 0, fmt.Errorf("operand is %T, want float64", raw[0])
	}
	return a, nil
}

func binary(raw []any) (float64, float64, error) {
	if len(raw) != 2 {
		return 0, 0, fmt.Errorf("want 2 operands, got %d", len(raw))
	}
	a, ok := raw[0].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("operand 0 is %T, want float64", raw[0])
	}
	b, ok := raw[1].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("operand 1 is %T, want float64", raw[1])
	}
	return a, b, nil
}
