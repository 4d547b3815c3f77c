package svgdom

// Walk visits the subtree rooted at `from` in document order, calling
// fn for each node. It stops early when fn returns false, and reports
// whether the walk ran to completion.
func (d *Document) Walk(from Node, fn func(Node) bool) bool {
	if from == nil {
		return true
	}
	if !fn(from) {
		return false
	}
	if c, ok := from.(Container); ok {
		for _, id := range c.Children() {
			if !d.Walk(d.Node(id), fn) {
				return false
			}
		}
	}
	return true
}

// ElementByID returns the first element with the given id, in document
// order, or nil. The root id is checked before descending.
func (d *Document) ElementByID(id string) Element {
	if id == "" || d.root == nil {
		return nil
	}
	if d.root.ID == id {
		return d.root
	}
	var found Element
	d.Walk(d.root, func(n Node) bool {
		el, ok := n.(Element)
		if ok && el.element().ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// ResolveIRI resolves a local reference of the form "#id". External
// and malformed references yield nil.
func (d *Document) ResolveIRI(href string) Element {
	if len(href) < 2 || href[0] != '#' {
		return nil
	}
	return d.ElementByID(href[1:])
}

// ElementsByKind collects every element of the given kind, in document
// order. Matching containers are descended into, so nested occurrences
// (a 'g' inside a 'g') are all reported.
func (d *Document) ElementsByKind(k Kind) []Element {
	var out []Element
	d.Walk(d.root, func(n Node) bool {
		if el, ok := n.(Element); ok && n.Kind() == k {
			out = append(out, el)
		}
		return true
	})
	return out
}

// ViewList returns the ids of all 'view' elements in the document,
// the candidates for partial rendering.
func (d *Document) ViewList() []string {
	var ids []string
	for _, el := range d.ElementsByKind(KindView) {
		if id := el.element().ID; id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
