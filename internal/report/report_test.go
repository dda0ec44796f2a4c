// ABOUTME: Tests for result tables, markdown output and terminal detection
// ABOUTME: Uses fixed results so every formatted cell is predictable

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/callme-go/internal/bench"
	"github.com/mauromedda/callme-go/internal/pretty"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{Group: bench.GroupDelegate, Name: "Delegate, method", Iterations: 1000, Elapsed: 2 * time.Millisecond},
		{Group: bench.GroupEvent, Name: "Event.Raise", Subscribers: 10, Iterations: 100, Elapsed: 3 * time.Millisecond},
		{Group: bench.GroupDelegate, Name: "Delegate, view", Iterations: 1000, Elapsed: time.Millisecond},
	}
}

func TestTables_OnePerGroup(t *testing.T) {
	t.Parallel()

	tables, err := Tables(sampleResults())
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}

	del := tables[0]
	if del.Title() != bench.GroupTitle(bench.GroupDelegate) {
		t.Errorf("first title = %q", del.Title())
	}
	if del.NumRows() != 3 || del.NumColumns() != len(header) {
		t.Fatalf("delegate table shape = %dx%d", del.NumRows(), del.NumColumns())
	}
	if got := del.Text(2, 0); got != "Delegate, view" {
		t.Errorf("row order: Text(2, 0) = %q", got)
	}

	ev := tables[1]
	tests := []struct {
		col  int
		want string
	}{
		{0, "Event.Raise, 10 subscribers"},
		{1, "100"},
		{2, "3,000 us"},
		{3, "3,000.00 ns/op"},
	}
	for _, tt := range tests {
		if got := ev.Text(1, tt.col); got != tt.want {
			t.Errorf("event Text(1, %d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleResults())
	for _, want := range []string{
		"## " + bench.GroupTitle(bench.GroupDelegate),
		"## " + bench.GroupTitle(bench.GroupEvent),
		"| Delegate, method | 1,000 | 2,000 us | 2,000.00 ns/op |",
		"|---|---:|---:|---:|",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Index(md, "Delegate, view") > strings.Index(md, "Event.Raise") {
		t.Error("results should be grouped before the next group starts")
	}
}

func TestWriteMarkdown_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	md := Markdown(sampleResults())
	if err := WriteMarkdown(&buf, md, false, 80); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if buf.String() != md {
		t.Error("plain output should be the raw markdown")
	}
}

func TestWriteMarkdown_Styled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, "# Title\n\nbody text\n", true, 80); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if !strings.Contains(buf.String(), "body text") {
		t.Errorf("styled output lost content: %q", buf.String())
	}
}

func TestWriteTables(t *testing.T) {
	t.Parallel()

	tables, err := Tables(sampleResults())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	p := pretty.NewPrinter()
	p.Frame = pretty.FrameBasic
	if err := WriteTables(&buf, tables, p); err != nil {
		t.Fatalf("WriteTables: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Delegate, method", "Event.Raise, 10 subscribers", "per call"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTerminal_RegularFile(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tty, width := Terminal(f)
	if tty || width != DefaultWidth {
		t.Errorf("Terminal(file) = %v, %d; want false, %d", tty, width, DefaultWidth)
	}
}
