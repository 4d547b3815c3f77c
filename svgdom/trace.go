package svgdom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'svgdom'.
func tracer() tracing.Trace {
	return tracing.Select("svgdom")
}
