package clipdata

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ExtractionPolicy decides which object keys are harvested and which files are never scanned.
// It is immutable once built.
type ExtractionPolicy struct {
	translatableKeys map[string]struct{}
	skipFiles        map[string]struct{}
}

func NewExtractionPolicy(translatableKeys []string, skipFiles []string) ExtractionPolicy {
	return ExtractionPolicy{
		translatableKeys: toSet(translatableKeys),
		skipFiles:        toSet(skipFiles),
	}
}

// DefaultExtractionPolicy harvests name, description and keywords, and skips the country list
// and the skin-tone modifier table.
func DefaultExtractionPolicy() ExtractionPolicy {
	return NewExtractionPolicy(
		[]string{"name", "description", "keywords"},
		[]string{"countries.json", "emojisModifier.json"},
	)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func (p ExtractionPolicy) IsTranslatable(key string) bool {
	_, ok := p.translatableKeys[key]
	return ok
}

func (p ExtractionPolicy) Skips(filename string) bool {
	_, ok := p.skipFiles[filename]
	return ok
}

// StringSet accumulates trimmed, non-empty strings.
type StringSet map[string]struct{}

// Add trims s and records it. It reports whether s was new.
func (s StringSet) Add(str string) bool {
	str = strings.TrimSpace(str)
	if str == "" {
		return false
	}
	if _, ok := s[str]; ok {
		return false
	}
	s[str] = struct{}{}
	return true
}

// Sorted returns the strings in lexicographic (byte) order.
func (s StringSet) Sorted() []string {
	out := lo.Keys(s)
	sort.Strings(out)
	return out
}

// Extractor walks JSON values and collects strings under translatable keys.
type Extractor struct {
	policy ExtractionPolicy
	log    *zap.Logger
}

func NewExtractor(policy ExtractionPolicy, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{policy: policy, log: log}
}

// Unwrap returns the value of a top-level "data" member, or v itself.
func Unwrap(v Value) Value {
	if obj, ok := v.(Object); ok {
		if data, found := obj.Get("data"); found {
			return data
		}
	}
	return v
}

// Extract adds every string reachable under a translatable key of v to set and returns the
// number of new strings.
func (e *Extractor) Extract(v Value, set StringSet) int {
	added := 0
	e.visit(v, set, &added)
	return added
}

func (e *Extractor) visit(v Value, set StringSet, added *int) {
	switch t := v.(type) {
	case Object:
		last := make(map[string]int, len(t))
		for i, m := range t {
			last[m.Key] = i
		}
		for i, m := range t {
			// Duplicate keys: only the last occurrence counts.
			if last[m.Key] != i {
				continue
			}
			if e.policy.IsTranslatable(m.Key) {
				e.harvest(m.Value, set, added)
				continue
			}
			e.visit(m.Value, set, added)
		}
	case Array:
		for _, item := range t {
			e.visit(item, set, added)
		}
	}
}

// harvest collects a string value, or the string elements of an array value. Nothing under a
// translatable key is recursed into.
func (e *Extractor) harvest(v Value, set StringSet, added *int) {
	switch t := v.(type) {
	case String:
		if set.Add(string(t)) {
			*added++
		}
	case Array:
		for _, item := range t {
			if s, ok := item.(String); ok && set.Add(string(s)) {
				*added++
			}
		}
	}
}

// ExtractFile parses one JSON file and extracts its strings into set. A read or parse failure is
// a KindItem error and contributes nothing.
func (e *Extractor) ExtractFile(fsys FileSystem, path string, set StringSet) (int, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return 0, newPipelineError(KindItem, filepath.Base(path), "read data file", err)
	}
	v, err := ParseValue(content)
	if err != nil {
		return 0, newPipelineError(KindItem, filepath.Base(path), "invalid JSON", err)
	}
	return e.Extract(Unwrap(v), set), nil
}

// DiscoverFiles lists the top-level entries of dir matching pattern, sorted by name. Entries
// named in the skip list are returned separately and never opened.
func (e *Extractor) DiscoverFiles(fsys FileSystem, dir string, pattern string) (files []string, skipped []string, err error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, nil, err
		}
		if !match {
			continue
		}
		if e.policy.Skips(name) {
			e.log.Info("skipping data file in skip list", zap.String("file", name))
			skipped = append(skipped, name)
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	sort.Strings(skipped)
	return files, skipped, nil
}
