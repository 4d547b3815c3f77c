package svgdom

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the document tree as indented ASCII art, one line per
// node, for debugging and golden tests.
func Dump(d *Document) string {
	tp := treeprint.New()
	if d.Root() != nil {
		dumpNode(d, d.Root(), tp)
	}
	return tp.String()
}

func dumpNode(d *Document, n Node, tp treeprint.Tree) {
	c, isContainer := n.(Container)
	if !isContainer || len(c.Children()) == 0 {
		tp.AddNode(nodeLabel(n))
		return
	}
	branch := tp.AddBranch(nodeLabel(n))
	for _, id := range c.Children() {
		dumpNode(d, d.Node(id), branch)
	}
}

func nodeLabel(n Node) string {
	if t, ok := n.(*TextSequence); ok {
		return fmt.Sprintf("%q", t.Text)
	}
	if el, ok := n.(Element); ok && el.element().ID != "" {
		return fmt.Sprintf("%s #%s", n.Kind(), el.element().ID)
	}
	return n.Kind().String()
}
