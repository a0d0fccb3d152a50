package inmem

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/fundfaq"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a catalog file.
type Format string

// Supported catalog formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the catalog format from a file extension.
// Returns EINVALID for unknown extensions.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fundfaq.Errorf(fundfaq.EINVALID, "unsupported catalog file %q: use .yaml, .yml or .json", path)
	}
}

// LoadCatalog decodes a list of FAQs from r. Unknown fields are rejected.
// The result is not validated; NewFAQService does that.
func LoadCatalog(r io.Reader, format Format) ([]*fundfaq.FAQ, error) {
	var faqs []*fundfaq.FAQ
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&faqs); err != nil && err != io.EOF {
			return nil, fundfaq.Errorf(fundfaq.EINVALID, "invalid YAML catalog: %s", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&faqs); err != nil {
			return nil, fundfaq.Errorf(fundfaq.EINVALID, "invalid JSON catalog: %s", err)
		}
	default:
		return nil, fundfaq.Errorf(fundfaq.EINVALID, "unsupported catalog format %q", format)
	}
	return faqs, nil
}

// LoadFAQServiceFile reads a catalog file and builds a FAQService from it.
func LoadFAQServiceFile(path string) (*FAQService, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	faqs, err := LoadCatalog(f, format)
	if err != nil {
		return nil, err
	}
	return NewFAQService(faqs)
}
