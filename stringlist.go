package clipdata

import (
	"fmt"
	"strings"
)

// StringList is a YAML list that may also be written as one comma-separated string
// (keys: [name, description] or keys: "name, description"). Blank items are dropped.
type StringList []string

// UnmarshalYAML allows a list to be given as a sequence or a comma-separated string in YAML.
func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		*l = splitList(strings.Split(t, ","))
		return nil
	case []interface{}:
		items := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("list items must be strings, got %T", item)
			}
			items = append(items, s)
		}
		*l = splitList(items)
		return nil
	default:
		return fmt.Errorf("list must be a sequence or string, got %T", v)
	}
}

// MarshalYAML always emits a sequence.
func (l StringList) MarshalYAML() (interface{}, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return []string(l), nil
}

func splitList(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
