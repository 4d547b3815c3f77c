package svgdom

import (
	"image"

	"github.com/benoitkugler/svgdom/svgstyle"
	"golang.org/x/image/font"
)

// FontRequest describes the font wanted for a text run, from the
// cascaded font properties.
type FontRequest struct {
	Family string
	Weight int // CSS numeric weight, 100 to 900
	Style  svgstyle.FontStyle
}

// FileResolver supplies the external resources a document may
// reference. Implementations may decline any request by returning nil:
// a declined font falls back to the platform default, a declined image
// is omitted from the output.
type FileResolver interface {
	// ResolveFont maps a font request to a concrete face.
	ResolveFont(req FontRequest) font.Face

	// ResolveImage decodes the image referenced by href.
	ResolveImage(href string) image.Image
}
