// Package classes provides the ordered container the expanded class names are
// folded into before they reach a templating layer, e.g. as the value of an
// HTML class attribute.
package classes

import "strings"

// Classes is an ordered set of class names. Names keep the order they were
// pushed in; duplicates and empty strings are dropped.
//
// The zero value is not usable, create instances with [New].
type Classes struct {
	names []string
	seen  map[string]struct{}
}

// New returns a Classes instance populated with the provided names.
func New(names ...string) *Classes {
	c := &Classes{
		names: make([]string, 0, len(names)),
		seen:  make(map[string]struct{}, len(names)),
	}

	c.PushAll(names)

	return c
}

// Push appends a single class name, unless it is empty or already present.
func (c *Classes) Push(name string) {
	if name == "" {
		return
	}

	if _, ok := c.seen[name]; ok {
		return
	}

	c.seen[name] = struct{}{}
	c.names = append(c.names, name)
}

// PushAll appends every name in order.
func (c *Classes) PushAll(names []string) {
	for _, name := range names {
		c.Push(name)
	}
}

// Has reports whether the class name is present.
func (c *Classes) Has(name string) bool {
	_, ok := c.seen[name]
	return ok
}

// Len returns the number of stored class names.
func (c *Classes) Len() int {
	return len(c.names)
}

// Names returns a copy of the stored class names in insertion order.
func (c *Classes) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// String joins the class names with single spaces, ready to be used as an
// HTML class attribute value.
func (c *Classes) String() string {
	return strings.Join(c.names, " ")
}
