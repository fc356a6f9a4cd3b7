// Package embed provides the embedded default preset template used by
// kickgen. The template is embedded at compile time using Go's embed
// directive and written out by the init command.
package embed

import (
	_ "embed"
)

//go:embed kicks.yaml
var defaultPreset []byte

// DefaultPreset returns the contents of the default kicks.yaml template.
func DefaultPreset() []byte {
	out := make([]byte, len(defaultPreset))
	copy(out, defaultPreset)
	return out
}
