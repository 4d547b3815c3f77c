package svgstyle

import "sort"

// Rule is one style-sheet rule: a selector (opaque to the cascade,
// owned by the external matching component), its specificity, and the
// declarations it carries.
type Rule struct {
	Selector    string
	Specificity int
	Style       *Style
}

// Ruleset aggregates style-sheet rules in declaration order.
// Duplicates are kept: a later identical rule must still win ties.
type Ruleset struct {
	rules []Rule
}

// Add appends a single rule.
func (rs *Ruleset) Add(r Rule) {
	rs.rules = append(rs.rules, r)
}

// AddAll appends every rule of `other`, preserving its order.
func (rs *Ruleset) AddAll(other Ruleset) {
	rs.rules = append(rs.rules, other.rules...)
}

// Rules returns the aggregated rules in declaration order.
func (rs *Ruleset) Rules() []Rule { return rs.rules }

func (rs *Ruleset) IsEmpty() bool { return len(rs.rules) == 0 }

// SortBySpecificity orders rules by ascending specificity, keeping
// declaration order for equal specificities so that later-declared
// rules are applied last and win.
func SortBySpecificity(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Specificity < rules[j].Specificity
	})
}
