// Package dashboard holds presentation-side selection state.
//
// Nothing here is shared between users: each request or CLI invocation owns its
// own Comparison and discards it afterwards.
package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCompared is the largest number of regions that can be compared at once.
const MaxCompared = 3

var (
	ErrComparisonFull  = errors.New("comparison already has the maximum number of regions")
	ErrDuplicateRegion = errors.New("region already selected for comparison")
	ErrEmptyRegion     = errors.New("region name required")
)

// Comparison is an ordered selection of up to MaxCompared region names.
type Comparison struct {
	names []string
}

// NewComparison builds a selection from names in order, rejecting duplicates and overflow.
func NewComparison(names ...string) (*Comparison, error) {
	c := &Comparison{}
	for _, n := range names {
		if err := c.Add(n); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a region to the selection.
func (c *Comparison) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRegion
	}
	if c.Contains(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateRegion, name)
	}
	if len(c.names) >= MaxCompared {
		return fmt.Errorf("%w (%d)", ErrComparisonFull, MaxCompared)
	}
	c.names = append(c.names, name)
	return nil
}

// Toggle removes name if it is selected, otherwise adds it when there is room.
// It reports whether name is selected afterwards.
func (c *Comparison) Toggle(name string) bool {
	if c.Remove(name) {
		return false
	}
	return c.Add(name) == nil
}

// Remove drops name from the selection and reports whether it was present.
func (c *Comparison) Remove(name string) bool {
	for i, n := range c.names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			c.names = append(c.names[:i], c.names[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Comparison) Contains(name string) bool {
	for _, n := range c.names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

func (c *Comparison) Clear() {
	c.names = nil
}

// Names returns the selected names in selection order.
func (c *Comparison) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Comparison) Len() int {
	return len(c.names)
}

// Full reports whether no more regions can be added.
func (c *Comparison) Full() bool {
	return len(c.names) >= MaxCompared
}
