package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	XMLFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrUnsupportedFormat = errors.New("unsupported format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yml":  YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, v)
}

// FromPath classifies path by its suffix. Only the suffix is consulted, the
// file is never opened.
func FromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	for _, f := range AllFormats() {
		for _, s := range f.Suffixes() {
			if ext == s {
				return f, nil
			}
		}
	}
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no file extension", ErrUnsupportedFormat, path)
	}
	return 0, fmt.Errorf("%w: %q (extension %s)", ErrUnsupportedFormat, path, ext)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(strings.TrimSpace(string(d)))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the preferred file extension for this format (including the dot).
func (f Format) Suffix() string {
	s := f.Suffixes()
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Suffixes returns every file extension recognized for this format, preferred first.
func (f Format) Suffixes() []string {
	switch f {
	case XMLFormat:
		return []string{".xml"}
	case JSONFormat:
		return []string{".json"}
	case YAMLFormat:
		return []string{".yaml", ".yml"}
	default:
		return nil
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, JSONFormat, YAMLFormat}
}
