// ABOUTME: Turns benchmark results into per-group tables or a markdown document
// ABOUTME: Markdown is rendered with glamour on terminals and written raw otherwise

// Package report presents bench results.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/callme-go/internal/bench"
	"github.com/mauromedda/callme-go/internal/pretty"
)

var header = []string{"scenario", "iterations", "total", "per call"}

func row(r bench.Result) []string {
	return []string{
		r.Label(),
		pretty.Count(int64(r.Iterations)),
		pretty.Micros(r.Elapsed),
		pretty.PerOp(r.Elapsed, r.Calls()),
	}
}

// groups splits results by group in order of first appearance.
func groups(results []bench.Result) (names []string, byGroup map[string][]bench.Result) {
	byGroup = make(map[string][]bench.Result)
	for _, r := range results {
		if _, ok := byGroup[r.Group]; !ok {
			names = append(names, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}
	return names, byGroup
}

// Tables returns one titled table per result group.
func Tables(results []bench.Result) ([]*pretty.Table, error) {
	names, byGroup := groups(results)
	tables := make([]*pretty.Table, 0, len(names))
	for _, g := range names {
		t := &pretty.Table{}
		t.SetTitle(bench.GroupTitle(g))
		if err := t.AddRow(header...); err != nil {
			return nil, err
		}
		for _, r := range byGroup[g] {
			if err := t.AddRow(row(r)...); err != nil {
				return nil, fmt.Errorf("group %s: %w", g, err)
			}
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Markdown returns results as a markdown document with one section per group.
func Markdown(results []bench.Result) string {
	var b strings.Builder
	b.WriteString("# callme benchmark\n")
	names, byGroup := groups(results)
	for _, g := range names {
		fmt.Fprintf(&b, "\n## %s\n\n", bench.GroupTitle(g))
		writeMarkdownRow(&b, header)
		b.WriteString("|---|---:|---:|---:|\n")
		for _, r := range byGroup[g] {
			writeMarkdownRow(&b, row(r))
		}
	}
	return b.String()
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(c, "|", `\|`))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// WriteTables renders every table with p, separated by blank lines.
func WriteTables(w io.Writer, tables []*pretty.Table, p pretty.Printer) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, p.Render(t)); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdown writes md to w. When styled, it is rendered for a terminal
// of the given width; otherwise the raw markdown is written.
func WriteMarkdown(w io.Writer, md string, styled bool, width int) error {
	if !styled {
		_, err := io.WriteString(w, md)
		return err
	}
	rendered, err := Render(md, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}

// Render styles md for a terminal of the given width.
func Render(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
