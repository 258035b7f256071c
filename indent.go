package clipdata

import (
	"fmt"
	"strconv"
	"strings"
)

// Indent is the whitespace added to the section-close indentation for each generated manifest
// declaration. YAML accepts a number of spaces (indent: 4) or a literal string (indent: "\t").
type Indent string

// UnmarshalYAML allows indent to be given as int or string in YAML.
func (i *Indent) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	if v == nil {
		*i = ""
		return nil
	}
	switch t := v.(type) {
	case string:
		*i = Indent(t)
		return nil
	case int:
		if t < 0 {
			return fmt.Errorf("indent must not be negative, got %d", t)
		}
		*i = Indent(strings.Repeat(" ", t))
		return nil
	default:
		return fmt.Errorf("indent must be string or int, got %T", v)
	}
}

// MarshalYAML emits an int when the indent is only spaces, otherwise the literal string.
func (i Indent) MarshalYAML() (interface{}, error) {
	s := string(i)
	if s == "" {
		return nil, nil
	}
	if strings.Trim(s, " ") == "" {
		return len(s), nil
	}
	return s, nil
}

// Spaces returns an Indent of n spaces. Use when building ManifestLayout in code.
func Spaces(n int) Indent {
	if n < 0 {
		n = 0
	}
	return Indent(strings.Repeat(" ", n))
}

func (i Indent) String() string {
	return strconv.Quote(string(i))
}
