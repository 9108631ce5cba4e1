// Package catalog provides a small insertion-ordered name registry.
//
// Every generator in refsheet selects its variants by name (easing curves,
// fiducial styles, bpm filters, output formats, guide styles). A [Catalog]
// keeps those names in registration order so listings are stable between
// runs, and reports unknown names with the list of names that do exist.
package catalog

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by [Catalog.Lookup] for an unregistered name.
// It unwraps to the sentinel the catalog was created with.
type NotFoundError struct {
	Kind      string
	Name      string
	Available []string
	sentinel  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s: %q (available: %s)", e.Kind, e.Name, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return e.sentinel
}

type Catalog[T any] struct {
	kind     string
	sentinel error
	names    []string
	items    map[string]T
}

// New creates an empty catalog. kind names the entries in error messages
// ("easing", "bpm filter"); sentinel is what lookup failures unwrap to.
func New[T any](kind string, sentinel error) *Catalog[T] {
	return &Catalog[T]{
		kind:     kind,
		sentinel: sentinel,
		items:    make(map[string]T),
	}
}

// Register adds v under name. Registering an existing name replaces the
// value but keeps its original position.
func (c *Catalog[T]) Register(name string, v T) {
	if _, ok := c.items[name]; !ok {
		c.names = append(c.names, name)
	}
	c.items[name] = v
}

func (c *Catalog[T]) Lookup(name string) (T, error) {
	v, ok := c.items[name]
	if !ok {
		var zero T
		return zero, &NotFoundError{
			Kind:      c.kind,
			Name:      name,
			Available: c.Names(),
			sentinel:  c.sentinel,
		}
	}
	return v, nil
}

func (c *Catalog[T]) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Names returns a copy of the registered names in registration order.
func (c *Catalog[T]) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

func (c *Catalog[T]) Len() int {
	return len(c.names)
}

func (c *Catalog[T]) Kind() string {
	return c.kind
}
