package corvus

import (
	"sort"
)

// Environment is a chained mapping from names to values implementing
// lexical scoping. Environments are shared by pointer: every closure
// defined in a scope holds a reference to the same Environment, and a
// binding written with Let is observed by all of them.
type Environment struct {
	outer *Environment // Optional
	store map[string]Value
}

func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		outer: outer,
		store: map[string]Value{},
	}
}

// Let creates or overwrites a binding in the local scope only. A name
// already visible from an outer scope is shadowed, never mutated.
func (self *Environment) Let(name string, value Value) {
	self.store[name] = value
}

func (self *Environment) Get(name string) (Value, bool) {
	env := self
	for env != nil {
		value, ok := env.store[name]
		if ok {
			return value, true
		}
		env = env.outer
	}
	return nil, false
}

// Names lists the local binding names in sorted order. This is the only
// introspection surface over an environment: bound values are not
// rendered, as a bound function may capture this same environment and a
// deep traversal would never terminate.
func (self *Environment) Names() []string {
	names := make([]string, 0, len(self.store))
	for name := range self.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
