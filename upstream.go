package clipdata

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseUpstream projects the remote country list onto UpstreamCountry values. Field access is
// best-effort: missing fields become empty values and a missing common name becomes "Unknown".
func ParseUpstream(raw []byte) ([]UpstreamCountry, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("upstream payload is not valid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return nil, fmt.Errorf("upstream payload is not a JSON array")
	}
	items := root.Array()
	out := make([]UpstreamCountry, 0, len(items))
	for _, item := range items {
		name := item.Get("name.common")
		c := UpstreamCountry{
			Name:     "Unknown",
			Code:     item.Get("cca2").String(),
			DialRoot: item.Get("idd.root").String(),
			FlagURL:  item.Get("flags.svg").String(),
		}
		if name.Exists() {
			c.Name = name.String()
		}
		for _, s := range item.Get("idd.suffixes").Array() {
			if s.Type == gjson.String {
				c.DialSuffixes = append(c.DialSuffixes, s.Str)
			}
		}
		out = append(out, c)
	}
	return out, nil
}
