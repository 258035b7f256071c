package clipdata

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var gresourcePrefixRegex = regexp.MustCompile(`<gresource\s+prefix="([^"]+)"`)

// ManifestLayout describes the textual shape of generated-asset declarations in a manifest.
type ManifestLayout struct {
	// AssetDir is the relative path marker of the generated asset directory, with trailing slash.
	AssetDir     string
	FileOpen     string
	FileClose    string
	SectionClose string
	Indent       string
}

// DefaultManifestLayout matches the extension's gresource.xml.
func DefaultManifestLayout() ManifestLayout {
	return ManifestLayout{
		AssetDir:     DefaultAssetDir + "/",
		FileOpen:     "<file>",
		FileClose:    "</file>",
		SectionClose: "</gresource>",
		Indent:       "    ",
	}
}

type lineKind int

const (
	lineOpaque lineKind = iota
	lineAsset
)

// ManifestLine is one manifest line with its original terminator.
type ManifestLine struct {
	kind lineKind
	Text string
}

// IsAsset reports whether the line declares a generated asset.
func (l ManifestLine) IsAsset() bool {
	return l.kind == lineAsset
}

// SplitLines splits content into lines, each keeping its terminator. The last line has no
// terminator when content does not end with a newline.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) []byte {
	return []byte(strings.Join(lines, ""))
}

func (l ManifestLayout) classify(line string) lineKind {
	if strings.Contains(line, l.AssetDir) && strings.Contains(line, l.FileOpen) {
		return lineAsset
	}
	return lineOpaque
}

// ParseManifest tags each line as opaque or as a generated-asset declaration.
func (l ManifestLayout) ParseManifest(lines []string) []ManifestLine {
	out := make([]ManifestLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, ManifestLine{kind: l.classify(line), Text: line})
	}
	return out
}

// Declaration renders one generated-asset declaration, without indentation or terminator.
func (l ManifestLayout) Declaration(filename string) string {
	return l.FileOpen + l.AssetDir + filename + l.FileClose
}

// Synchronize replaces every generated-asset declaration with one declaration per filename,
// sorted and deduplicated, inserted before each section-close line. Opaque lines pass through
// byte-for-byte in their original order.
func (l ManifestLayout) Synchronize(lines []string, filenames []string) []string {
	names := lo.Uniq(filenames)
	sort.Strings(names)

	parsed := l.ParseManifest(lines)
	out := make([]string, 0, len(lines)+len(names))
	lastTerm := "\n"
	for _, line := range parsed {
		term := terminator(line.Text, lastTerm)
		lastTerm = term
		if line.IsAsset() {
			continue
		}
		if strings.Contains(line.Text, l.SectionClose) {
			indent := leadingWhitespace(line.Text) + l.Indent
			for _, name := range names {
				out = append(out, indent+l.Declaration(name)+term)
			}
		}
		out = append(out, line.Text)
	}
	return out
}

// Declared returns the filenames of the generated-asset declarations currently in lines.
func (l ManifestLayout) Declared(lines []string) []string {
	var names []string
	for _, line := range l.ParseManifest(lines) {
		if !line.IsAsset() {
			continue
		}
		text := strings.TrimSpace(line.Text)
		text = strings.TrimPrefix(text, l.FileOpen+l.AssetDir)
		text = strings.TrimSuffix(text, l.FileClose)
		names = append(names, text)
	}
	return names
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t\r\n\v\f"))]
}

// terminator returns the line ending of line, or fallback when line is unterminated.
func terminator(line string, fallback string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return fallback
	}
}

// DiscoverPrefix finds the gresource prefix attribute.
func DiscoverPrefix(content []byte) (string, bool) {
	match := gresourcePrefixRegex.FindSubmatch(content)
	if match == nil {
		return "", false
	}
	return string(match[1]), true
}

// SyncManifestFile rewrites the manifest at path so its generated-asset declarations match
// filenames. A missing manifest is a KindMissingResource error and nothing is written.
func SyncManifestFile(fsys FileSystem, path string, layout ManifestLayout, filenames []string) error {
	content, err := fsys.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return newPipelineError(KindMissingResource, path, "manifest not found", err)
		}
		return newPipelineError(KindMissingResource, path, "read manifest", err)
	}
	synced := JoinLines(layout.Synchronize(SplitLines(content), filenames))
	if err := fsys.WriteFile(path, synced, 0o644); err != nil {
		return newPipelineError(KindItem, path, "write manifest", err)
	}
	return nil
}
