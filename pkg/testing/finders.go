package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/bloc/pkg/core"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first
	// pre-order).
	Evaluate(root core.Element) []core.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no elements: %s", desc))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the widget of the first matched element. Panics if no
// matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// --- Concrete finders ---

// typeFinder matches elements whose widget is of the specified type.
type typeFinder struct {
	widgetType reflect.Type
	typeName   string
}

func (f *typeFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		return reflect.TypeOf(e.Widget()) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches elements whose widget is type T.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &typeFinder{widgetType: t, typeName: t.String()}
}

// keyFinder matches elements whose widget key equals the given key.
type keyFinder struct {
	key any
}

func (f *keyFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		return e.Widget().Key() == f.key
	})
}

func (f *keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%v)", f.key)
}

// ByKey returns a finder that matches elements whose widget key equals
// key.
func ByKey(key any) Finder {
	return &keyFinder{key: key}
}

// predicateFinder matches elements for which the predicate returns true.
type predicateFinder struct {
	predicate   func(core.Element) bool
	description string
}

func (f *predicateFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, f.predicate)
}

func (f *predicateFinder) Description() string {
	return f.description
}

// ByPredicate returns a finder that matches elements satisfying predicate.
// The description is used in error messages.
func ByPredicate(description string, predicate func(core.Element) bool) Finder {
	return &predicateFinder{predicate: predicate, description: description}
}

// collectMatches walks the element tree depth-first pre-order.
func collectMatches(root core.Element, match func(core.Element) bool) []core.Element {
	var matches []core.Element
	var walk func(core.Element)
	walk = func(e core.Element) {
		if match(e) {
			matches = append(matches, e)
		}
		e.VisitChildren(func(child core.Element) bool {
			walk(child)
			return true
		})
	}
	walk(root)
	return matches
}
