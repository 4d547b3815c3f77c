package svgdom

import (
	"errors"

	"github.com/benoitkugler/svgdom/svgstyle"
)

var errReattached = errors.New("node is already attached to a document")

// Document owns the node arena, the root element, document metadata,
// the external-resolver hook and the aggregated style-sheet rules.
//
// It is populated once by the parsing collaborator and is immutable
// afterwards, except for the resolver hook and rule aggregation which
// may be set any time before the first render.
type Document struct {
	nodes []Node
	root  *Svg

	title   string
	desc    string
	version string

	resolver FileResolver
	rules    svgstyle.Ruleset
}

// NewDocument returns an empty document, ready to be populated.
func NewDocument() *Document {
	return &Document{}
}

// register adds the node to the arena and records the back-references.
func (d *Document) register(n Node) (NodeID, error) {
	b := n.base()
	if b.document != nil {
		return NoNode, errReattached
	}
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	b.document = d
	b.self = id
	b.parent = NoNode
	return id, nil
}

// SetRoot installs the root element of the document.
func (d *Document) SetRoot(root *Svg) error {
	if _, err := d.register(root); err != nil {
		return err
	}
	d.root = root
	return nil
}

// Root returns the root element, or nil for an empty document.
func (d *Document) Root() *Svg { return d.root }

// Node returns the arena node with the given id, or nil.
func (d *Document) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(d.nodes) {
		return nil
	}
	return d.nodes[id]
}

// AppendChild validates `child` against the container's allowed-child
// policy, registers it with the document and attaches it to the
// parent. This is the only mutation entry point during construction.
func (d *Document) AppendChild(parent Container, child Node) error {
	if !parent.accepts(child) {
		return StructuralError{Container: parent.Kind(), Child: child.Kind()}
	}
	id, err := d.register(child)
	if err != nil {
		return err
	}
	child.base().parent = parent.base().self
	parent.attach(id)
	return nil
}

// Document metadata, all optional and defaulting to "".

func (d *Document) Title() string { return d.title }

func (d *Document) SetTitle(title string) { d.title = title }

func (d *Document) Description() string { return d.desc }

func (d *Document) SetDescription(desc string) { d.desc = desc }

// Version returns the SVG version declared by the root element.
func (d *Document) Version() string { return d.version }

func (d *Document) SetVersion(version string) { d.version = version }

// SetResolver registers the resolver used for external image and font
// references. Last write wins; a nil resolver declines everything.
func (d *Document) SetResolver(r FileResolver) { d.resolver = r }

func (d *Document) Resolver() FileResolver { return d.resolver }

// AddRules appends a parsed style-sheet to the document rules,
// preserving declaration order. Duplicate rules are kept.
func (d *Document) AddRules(rs svgstyle.Ruleset) { d.rules.AddAll(rs) }

// Rules returns the aggregated rules in declaration order.
func (d *Document) Rules() []svgstyle.Rule { return d.rules.Rules() }

func (d *Document) HasRules() bool { return !d.rules.IsEmpty() }

// PaintServer resolves a paint reference to the gradient or pattern
// element it names. A missing id, or an id naming an element of the
// wrong kind, is a resolution miss: nil and the mandatory fallback
// paint are returned, never an error.
func (d *Document) PaintServer(ref svgstyle.PaintRef) (Element, svgstyle.Paint) {
	el := d.ResolveIRI(ref.Href)
	switch el.(type) {
	case *LinearGradient, *RadialGradient, *Pattern:
		return el, nil
	}
	tracer().Infof("paint reference %q not resolved, using fallback", ref.Href)
	return nil, ref.Fallback
}
