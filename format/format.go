// Package format holds the per-format semantics records: how each
// supported format's node kinds correspond to semantic roles, which
// strategy rebuilds each structural category, and how to query trees
// of that format.
package format

import (
	"errors"
	"fmt"
)

// ID identifies a supported format.  The builtin formats are a closed
// enumeration; external formats register records under their own IDs.
type ID int

const (
	JSON ID = iota
	CSV
	XML
	YAML
)

var ErrBadFormat = errors.New("bad format")

func ParseID(v string) (ID, error) {
	f, ok := map[string]ID{
		"j":    JSON,
		"json": JSON,
		"c":    CSV,
		"csv":  CSV,
		"x":    XML,
		"xml":  XML,
		"y":    YAML,
		"yaml": YAML,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f ID) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f ID) MarshalText() ([]byte, error) {
	switch f {
	case JSON:
		return []byte("json"), nil
	case CSV:
		return []byte("csv"), nil
	case XML:
		return []byte("xml"), nil
	case YAML:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *ID) UnmarshalText(d []byte) error {
	pf, err := ParseID(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f ID) Suffix() string {
	switch f {
	case JSON:
		return ".json"
	case CSV:
		return ".csv"
	case XML:
		return ".xml"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// Builtin returns the builtin formats in preference order.
func Builtin() []ID {
	return []ID{JSON, CSV, XML, YAML}
}
