package linter

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// RulesetAll names the implicit ruleset holding every registered rule.
const RulesetAll = "all"

// Registry holds registered rules and the named rulesets grouping them.
type Registry[T any] struct {
	mu       sync.RWMutex
	rules    map[string]RuleRunner[T]
	rulesets map[string][]string // ruleset name -> rule IDs
}

// NewRegistry creates a new rule registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		rules:    make(map[string]RuleRunner[T]),
		rulesets: make(map[string][]string),
	}
}

// Register registers rules. A rule with an already registered ID replaces
// the earlier one.
func (r *Registry[T]) Register(rules ...RuleRunner[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rule := range rules {
		r.rules[rule.ID()] = rule
	}
}

// RegisterRuleset registers a ruleset
func (r *Registry[T]) RegisterRuleset(name string, ruleIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == RulesetAll {
		return fmt.Errorf("ruleset %q is reserved", name)
	}
	if _, exists := r.rulesets[name]; exists {
		return fmt.Errorf("ruleset %q already registered", name)
	}

	for _, id := range ruleIDs {
		if _, exists := r.rules[id]; !exists {
			return fmt.Errorf("rule %q in ruleset %q not found", id, name)
		}
	}

	r.rulesets[name] = slices.Clone(ruleIDs)
	return nil
}

// AddToRuleset appends rules to a ruleset, creating it when needed.
func (r *Registry[T]) AddToRuleset(name string, ruleIDs ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == RulesetAll {
		return nil
	}
	for _, id := range ruleIDs {
		if _, exists := r.rules[id]; !exists {
			return fmt.Errorf("rule %q in ruleset %q not found", id, name)
		}
		if !slices.Contains(r.rulesets[name], id) {
			r.rulesets[name] = append(r.rulesets[name], id)
		}
	}
	return nil
}

// GetRule returns a rule by ID
func (r *Registry[T]) GetRule(id string) (RuleRunner[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	return rule, ok
}

// GetRuleset returns rule IDs for a ruleset
func (r *Registry[T]) GetRuleset(name string) ([]string, bool) {
	if name == RulesetAll {
		return r.AllRuleIDs(), true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.rulesets[name]
	return slices.Clone(ids), ok
}

// AllRules returns all registered rules sorted by ID
func (r *Registry[T]) AllRules() []RuleRunner[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RuleRunner[T], 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
	return rules
}

// AllRuleIDs returns all registered rule IDs
func (r *Registry[T]) AllRuleIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RulesInCategory returns the rules of a category sorted by ID
func (r *Registry[T]) RulesInCategory(category string) []RuleRunner[T] {
	var rules []RuleRunner[T]
	for _, rule := range r.AllRules() {
		if rule.Category() == category {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllCategories returns all unique categories
func (r *Registry[T]) AllCategories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make(map[string]bool)
	for _, rule := range r.rules {
		categories[rule.Category()] = true
	}

	cats := make([]string, 0, len(categories))
	for cat := range categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// AllRulesets returns all registered ruleset names, including "all"
func (r *Registry[T]) AllRulesets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rulesets)+1)
	names = append(names, RulesetAll)
	for name := range r.rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RulesetsContaining returns names of rulesets that contain the given rule ID
func (r *Registry[T]) RulesetsContaining(ruleID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sets := []string{RulesetAll}
	for name, ids := range r.rulesets {
		if slices.Contains(ids, ruleID) {
			sets = append(sets, name)
		}
	}
	sort.Strings(sets)
	return sets
}

// CategoryOf returns the category of a registered rule, or "unknown".
func (r *Registry[T]) CategoryOf(ruleID string) string {
	if rule, ok := r.GetRule(ruleID); ok {
		return rule.Category()
	}
	return "unknown"
}
