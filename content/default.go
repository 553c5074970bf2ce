package content

import (
	"bytes"
	_ "embed"
)

//go:embed cv.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default deck source
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Default loads the embedded curriculum vitae deck
func Default() (*Deck, error) {
	return Load(bytes.NewReader(defaultYAML))
}
