package svgdom

import "github.com/benoitkugler/svgdom/svgstyle"

// RuleMatcher decides which style-sheet rules apply to an element.
// Selector matching is out of scope here: the matcher is supplied by
// the CSS component, which owns the selector syntax.
type RuleMatcher interface {
	MatchingRules(doc *Document, el Element) []svgstyle.Rule
}

// RuleMatcherFunc adapts a plain function to the RuleMatcher interface.
type RuleMatcherFunc func(doc *Document, el Element) []svgstyle.Rule

func (f RuleMatcherFunc) MatchingRules(doc *Document, el Element) []svgstyle.Rule {
	return f(doc, el)
}

// Cascade computes fully resolved styles for one rendering pass.
// Resolved styles are memoized per node; the shared tree is never
// written to, so several passes may run over the same document, each
// with its own Cascade.
type Cascade struct {
	doc      *Document
	matcher  RuleMatcher
	resolved map[NodeID]*svgstyle.Style
}

// NewCascade returns a cascade over `doc`. A nil matcher disables
// style-sheet rules; presentation attributes and inline styles still
// apply.
func NewCascade(doc *Document, matcher RuleMatcher) *Cascade {
	return &Cascade{
		doc:      doc,
		matcher:  matcher,
		resolved: make(map[NodeID]*svgstyle.Style),
	}
}

// ResolveStyle returns the element's resolved style: the inherited
// style with, in increasing precedence, matched rules (ascending
// specificity, later declaration winning ties), presentation
// attributes, then the inline style. Non-inheriting properties are
// reset to their defaults before the element's own layers apply; the
// root element starts from the default style without the reset.
//
// The returned style is owned by the cascade and must not be mutated.
func (c *Cascade) ResolveStyle(el Element) *svgstyle.Style {
	id := el.base().self
	if s, ok := c.resolved[id]; ok {
		return s
	}

	var s *svgstyle.Style
	if parent := c.parentElement(el); parent != nil {
		s = c.ResolveStyle(parent).Clone()
		s.ResetNonInheriting()
	} else {
		// the root inherits from the default style untouched, so its
		// overflow stays visible (SVG 1.1 section 14.3.3)
		s = svgstyle.Default.Clone()
	}

	if c.matcher != nil && c.doc.HasRules() {
		rules := append([]svgstyle.Rule(nil), c.matcher.MatchingRules(c.doc, el)...)
		svgstyle.SortBySpecificity(rules)
		for _, r := range rules {
			s.Apply(r.Style)
		}
	}

	eb := el.element()
	if eb.BaseStyle != nil {
		s.Apply(eb.BaseStyle)
	}
	if eb.OwnStyle != nil {
		s.Apply(eb.OwnStyle)
	}

	c.resolved[id] = s
	return s
}

// parentElement walks up until it finds an ancestor element.
func (c *Cascade) parentElement(el Element) Element {
	for n := el.base().Parent(); n != nil; n = n.base().Parent() {
		if p, ok := n.(Element); ok {
			return p
		}
	}
	return nil
}
