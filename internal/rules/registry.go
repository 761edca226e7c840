package rules

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds known rules in registration order. That order is the
// execution order, so rules that other rules rely on sit earlier.
type Registry struct {
	list   []Rule
	byName map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Rule)}
}

// Register adds a rule. Duplicate names are a programming error.
func (r *Registry) Register(rule Rule) error {
	name := rule.Name()
	if name == "" {
		return fmt.Errorf("rules: rule with empty name")
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("rules: duplicate rule %q", name)
	}
	r.byName[name] = rule
	r.list = append(r.list, rule)
	return nil
}

// All returns the rules in registration order. The slice is a copy.
func (r *Registry) All() []Rule {
	out := make([]Rule, len(r.list))
	copy(out, r.list)
	return out
}

// Get looks a rule up by name.
func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.byName[name]
	return rule, ok
}

// Names returns the registered rule names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.list))
	for i, rule := range r.list {
		out[i] = rule.Name()
	}
	return out
}

// Resolve maps user-supplied names to rules, keeping registration
// order regardless of how the names were listed. Unknown names fail
// with the full known list in the message so a typo is a one-read fix.
func (r *Registry) Resolve(names []string) ([]Rule, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	wanted := make(map[string]bool, len(names))
	var unknown []string
	for _, name := range names {
		if _, ok := r.byName[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		wanted[name] = true
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown rule %s (known: %s)",
			strings.Join(unknown, ", "), strings.Join(r.Names(), ", "))
	}
	var out []Rule
	for _, rule := range r.list {
		if wanted[rule.Name()] {
			out = append(out, rule)
		}
	}
	return out, nil
}

// Default returns the registry with every shipped rule, in the order
// they are meant to run: structural rewrites first, cosmetic ones
// after.
func Default() *Registry {
	r := NewRegistry()
	for _, rule := range []Rule{
		Visibility{},
		MagicCase{},
		SingleQuote{},
		Elseif{},
		TrailingSpace{},
	} {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
	return r
}
