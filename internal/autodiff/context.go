package autodiff

import "fmt"

// Context carries forward-pass state across to the backward pass of a
// single operation invocation. Apply creates one per call; the History it
// is attached to owns it. When no operand requires differentiation the
// context is frozen (no-grad) and saving is skipped entirely.
type Context struct {
	noGrad bool
	saved  []any
}

// NewContext creates a context. A no-grad context silently drops saves
// and refuses reads.
func NewContext(noGrad bool) *Context {
	return &Context{noGrad: noGrad}
}

// NoGrad reports whether this invocation skipped gradient tracking.
func (c *Context) NoGrad() bool { return c.noGrad }

// SaveForBackward stores the given ordered values for use by the matching
// Backward call, replacing any prior save. No-op on a no-grad context.
func (c *Context) SaveForBackward(values ...any) {
	if c.noGrad {
		return
	}
	c.saved = values
}

// SavedValues returns the values stored by SaveForBackward.
// Reading a no-grad context or reading before any save is a contract
// violation and fails with ErrFrozenContext or ErrUnsavedValues.
func (c *Context) SavedValues() ([]any, error) {
	if c.noGrad {
		return nil, fmt.Errorf("saved values: %w", ErrFrozenContext)
	}
	if c.saved == nil {
		return nil, fmt.Errorf("saved values: %w (did you forget to call SaveForBackward?)", ErrUnsavedValues)
	}
	return c.saved, nil
}

// SavedValue returns the lone saved value, for the common single-save case.
// Same error contract as SavedValues.
func (c *Context) SavedValue() (any, error) {
	vals, err := c.SavedValues()
	if err != nil {
		return nil, err
	}
	return vals[0], nil
}
