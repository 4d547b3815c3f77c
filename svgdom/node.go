// Package svgdom implements the in-memory document tree of an SVG
// file: a typed element hierarchy held in a node arena, tree-wide
// queries, the style cascade, and the document façade consumed by a
// traversal/rasterization component.
//
// The tree is built once by a parsing collaborator (append-only) and
// is read-only afterwards; per-pass state such as resolved styles and
// bounding boxes lives outside the shared nodes.
package svgdom

import (
	"fmt"

	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgstyle"
	"github.com/benoitkugler/svgdom/svgunit"
)

// NodeID is the stable index of a node inside its document's arena.
// Parent and owner links are ids, not pointers, so the tree holds no
// ownership cycles.
type NodeID int32

// NoNode is the id of an absent node (the root's parent).
const NoNode NodeID = -1

// Kind identifies the concrete variant of a node.
type Kind uint8

const (
	KindSvg Kind = iota
	KindGroup
	KindSwitch
	KindDefs
	KindSymbol
	KindView
	KindUse
	KindPath
	KindRect
	KindCircle
	KindEllipse
	KindLine
	KindPolyline
	KindPolygon
	KindImage
	KindText
	KindTSpan
	KindTRef
	KindTextPath
	KindTextSequence
	KindLinearGradient
	KindRadialGradient
	KindStop
	KindPattern
	KindClipPath
	KindMask
	KindMarker
)

func (k Kind) String() string {
	switch k {
	case KindSvg:
		return "svg"
	case KindGroup:
		return "g"
	case KindSwitch:
		return "switch"
	case KindDefs:
		return "defs"
	case KindSymbol:
		return "symbol"
	case KindView:
		return "view"
	case KindUse:
		return "use"
	case KindPath:
		return "path"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindPolygon:
		return "polygon"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	case KindTSpan:
		return "tspan"
	case KindTRef:
		return "tref"
	case KindTextPath:
		return "textPath"
	case KindTextSequence:
		return "#text"
	case KindLinearGradient:
		return "linearGradient"
	case KindRadialGradient:
		return "radialGradient"
	case KindStop:
		return "stop"
	case KindPattern:
		return "pattern"
	case KindClipPath:
		return "clipPath"
	case KindMask:
		return "mask"
	case KindMarker:
		return "marker"
	default:
		return "<unknown Kind>"
	}
}

// Node is implemented by every member of the document tree.
type Node interface {
	Kind() Kind
	Self() NodeID
	Document() *Document
	base() *NodeBase
}

// NodeBase carries the back-references shared by all tree members.
// Ownership flows downward only: these links are for navigation.
type NodeBase struct {
	document *Document
	self     NodeID
	parent   NodeID
}

func (b *NodeBase) base() *NodeBase { return b }

// Document returns the owning document (nil before registration).
func (b *NodeBase) Document() *Document { return b.document }

// Self returns the node's arena id.
func (b *NodeBase) Self() NodeID { return b.self }

// ParentID returns the arena id of the parent container, or NoNode
// for the root and for unattached nodes.
func (b *NodeBase) ParentID() NodeID { return b.parent }

// Parent returns the parent node, or nil for the root.
func (b *NodeBase) Parent() Node {
	if b.document == nil || b.parent == NoNode {
		return nil
	}
	return b.document.Node(b.parent)
}

// Element is a node backed by a markup element: it may carry an id,
// class names and per-node style layers. Character data runs
// (TextSequence) are nodes but not elements.
type Element interface {
	Node
	element() *ElementBase
}

// ElementBase is embedded by every element variant.
type ElementBase struct {
	NodeBase

	// ID is unique within the document by convention; uniqueness is
	// not enforced and lookups return the first match.
	ID string

	BaseStyle  *svgstyle.Style // from direct presentation attributes
	OwnStyle   *svgstyle.Style // from the inline 'style' attribute
	ClassNames []string
}

func (e *ElementBase) element() *ElementBase { return e }

// Container is the capability of holding ordered children. Children
// are attached through Document.AppendChild, which enforces the
// container's allowed-child policy.
type Container interface {
	Node
	Children() []NodeID
	accepts(child Node) bool
	attach(id NodeID)
}

// childList is the common child storage of container variants.
type childList struct {
	kids []NodeID
}

func (c *childList) Children() []NodeID { return c.kids }

func (c *childList) attach(id NodeID) { c.kids = append(c.kids, id) }

// anyChildren accepts children of every kind.
type anyChildren struct{ childList }

func (*anyChildren) accepts(Node) bool { return true }

// textChildren accepts only text-bearing children.
type textChildren struct{ childList }

func (*textChildren) accepts(child Node) bool {
	switch child.Kind() {
	case KindTSpan, KindTRef, KindTextPath, KindTextSequence:
		return true
	}
	return false
}

// stopChildren accepts only gradient stops.
type stopChildren struct{ childList }

func (*stopChildren) accepts(child Node) bool { return child.Kind() == KindStop }

// noChildren is a container in name only (the 'stop' element).
type noChildren struct{ childList }

func (*noChildren) accepts(Node) bool { return false }

// NotDirectlyRendered marks variants that are only drawn by reference
// (defs, symbol, marker, view, clipPath, mask, pattern).
type NotDirectlyRendered interface {
	notDirectlyRendered()
}

type notRendered struct{}

func (notRendered) notDirectlyRendered() {}

// Conditional holds the conditional-processing attributes of elements
// that may appear under a 'switch'. The attributes are stored for the
// traversal component, not evaluated here.
type Conditional struct {
	RequiredFeatures   []string
	RequiredExtensions string
	SystemLanguage     []string
}

// HasTransform is implemented by element variants that may carry
// their own transform.
type HasTransform interface {
	Transform() (svgpath.Matrix2D, bool)
	SetTransform(m svgpath.Matrix2D)
}

type withTransform struct {
	transform *svgpath.Matrix2D
}

// Transform returns the element transform, or the identity and false
// when none was set.
func (w *withTransform) Transform() (svgpath.Matrix2D, bool) {
	if w.transform == nil {
		return svgpath.Identity, false
	}
	return *w.transform, true
}

func (w *withTransform) SetTransform(m svgpath.Matrix2D) { w.transform = &m }

// withAspectRatio is embedded by variants accepting preserveAspectRatio.
type withAspectRatio struct {
	PreserveAspectRatio *PreserveAspectRatio
}

// withViewBox is embedded by variants establishing a new viewport.
type withViewBox struct {
	withAspectRatio
	ViewBox *svgunit.Box
}

// StructuralError reports a child appended to a container whose
// allowed-child policy forbids it. It aborts tree construction and is
// surfaced to the caller as a parse failure.
type StructuralError struct {
	Container Kind
	Child     Kind
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("%s elements cannot contain %s elements", e.Container, e.Child)
}
