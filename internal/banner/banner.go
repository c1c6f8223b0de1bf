package banner

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Banner is the ordered sequence of lines printed by the greeter.
// An empty line is printed as a blank line.
type Banner struct {
	Lines []string `yaml:"lines"`
}

var (
	// ErrEmpty is returned when a banner document has no lines.
	ErrEmpty = errors.New("banner has no lines")
	// ErrMultipleDocuments is returned when the input holds more than one YAML document.
	ErrMultipleDocuments = errors.New("banner must be a single YAML document")
)

//go:embed banner.yaml
var defaultYAML []byte

var defaultBanner = mustParse(defaultYAML)

// Default returns the built-in welcome banner.
// The result is a copy; modifying it does not affect later calls.
func Default() Banner {
	lines := make([]string, len(defaultBanner.Lines))
	copy(lines, defaultBanner.Lines)
	return Banner{Lines: lines}
}

// Parse decodes a banner document.
// Unknown fields, extra documents and lines containing line breaks are rejected.
func Parse(data []byte) (Banner, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var b Banner
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return Banner{}, ErrEmpty
		}
		return Banner{}, fmt.Errorf("decoding banner: %w", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Banner{}, ErrMultipleDocuments
	}

	if len(b.Lines) == 0 {
		return Banner{}, ErrEmpty
	}
	for i, line := range b.Lines {
		if strings.ContainsAny(line, "\r\n") {
			return Banner{}, fmt.Errorf("line %d: contains a line break", i+1)
		}
	}
	return b, nil
}

// mustParse panics if the embedded banner is malformed.
func mustParse(data []byte) Banner {
	b, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("built-in banner: %v", err))
	}
	return b
}
