package clipdata

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
)

// POTDateLayout is the gettext POT-Creation-Date format, always rendered in UTC.
const POTDateLayout = "2006-01-02 15:04+0000"

// TemplateHeader carries the project fields of the POT header.
type TemplateHeader struct {
	Title           string `yaml:"title"`
	Package         string `yaml:"package"`
	CopyrightHolder string `yaml:"copyright_holder"`
	CopyrightYear   int    `yaml:"copyright_year"`
	ProjectID       string `yaml:"project_id"`
	BugsTo          string `yaml:"bugs_to"`
}

func (h TemplateHeader) withDefaults() TemplateHeader {
	if h.Title == "" {
		h.Title = "Translation template for All-in-One Clipboard data content."
	}
	if h.Package == "" {
		h.Package = "All-in-One Clipboard"
	}
	if h.CopyrightHolder == "" {
		h.CopyrightHolder = "NiffirgkcaJ"
	}
	if h.CopyrightYear <= 0 {
		h.CopyrightYear = 2025
	}
	if h.ProjectID == "" {
		h.ProjectID = "all-in-one-clipboard"
	}
	return h
}

var potEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapePOT escapes backslashes and double quotes for a msgid.
func EscapePOT(s string) string {
	return potEscaper.Replace(s)
}

func (h TemplateHeader) render(now time.Time) string {
	h = h.withDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", h.Title)
	fmt.Fprintf(&b, "# Copyright (C) %d %s\n", h.CopyrightYear, h.CopyrightHolder)
	fmt.Fprintf(&b, "# This file is distributed under the same license as the %s package.\n", h.Package)
	b.WriteString("#\n")
	b.WriteString("#, fuzzy\n")
	b.WriteString("msgid \"\"\n")
	b.WriteString("msgstr \"\"\n")
	fmt.Fprintf(&b, "\"Project-Id-Version: %s\\n\"\n", h.ProjectID)
	fmt.Fprintf(&b, "\"Report-Msgid-Bugs-To: %s\\n\"\n", h.BugsTo)
	fmt.Fprintf(&b, "\"POT-Creation-Date: %s\\n\"\n", now.UTC().Format(POTDateLayout))
	b.WriteString("\"PO-Revision-Date: YEAR-MO-DA HO:MI+ZONE\\n\"\n")
	b.WriteString("\"Last-Translator: FULL NAME <EMAIL@ADDRESS>\\n\"\n")
	b.WriteString("\"Language-Team: LANGUAGE <LL@li.org>\\n\"\n")
	b.WriteString("\"Language: \\n\"\n")
	b.WriteString("\"MIME-Version: 1.0\\n\"\n")
	b.WriteString("\"Content-Type: text/plain; charset=UTF-8\\n\"\n")
	b.WriteString("\"Content-Transfer-Encoding: 8bit\\n\"\n")
	b.WriteString("\n")
	return b.String()
}

// EmitTemplate writes the POT header followed by one block per string, sorted. Every block
// references all source files. It returns the number of blocks written.
func EmitTemplate(w io.Writer, set StringSet, sources []string, now time.Time, header TemplateHeader) (int, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header.render(now)); err != nil {
		return 0, err
	}
	reference := strings.Join(lo.Map(sources, func(src string, _ int) string {
		return filepath.Base(src)
	}), ", ")
	strs := set.Sorted()
	for _, s := range strs {
		if _, err := fmt.Fprintf(bw, "#: %s\nmsgid \"%s\"\nmsgstr \"\"\n\n", reference, EscapePOT(s)); err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(strs), nil
}
