// ABOUTME: Tests for Table construction limits, Printer rendering and number formatting
// ABOUTME: Rendering checks rely on display width, so wide runes must stay aligned

package pretty

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTable_AddRowFixesColumns(t *testing.T) {
	t.Parallel()

	var tb Table
	if err := tb.AddRow("name", "time"); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if tb.NumColumns() != 2 || tb.NumRows() != 1 {
		t.Fatalf("shape = %dx%d, want 1x2", tb.NumRows(), tb.NumColumns())
	}
	if err := tb.AddRow("only one"); !errors.Is(err, ErrShape) {
		t.Errorf("AddRow with wrong width: err = %v, want ErrShape", err)
	}
	if err := tb.AddRow(); !errors.Is(err, ErrShape) {
		t.Errorf("AddRow(): err = %v, want ErrShape", err)
	}
}

func TestTable_SetText(t *testing.T) {
	t.Parallel()

	var tb Table
	if err := tb.AddColumns(3); err != nil {
		t.Fatal(err)
	}
	if err := tb.AddRows(2); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		row     int
		col     int
		text    string
		wantErr error
	}{
		{"first cell", 0, 0, "a", nil},
		{"last cell", 1, 2, "z", nil},
		{"row past end", 2, 0, "x", ErrOutOfRange},
		{"negative col", 0, -1, "x", ErrOutOfRange},
		{"newline", 0, 1, "a\nb", ErrInvalidText},
		{"tab", 0, 1, "a\tb", ErrInvalidText},
		{"too wide", 0, 1, strings.Repeat("x", MaxCellWidth+1), ErrOutOfRange},
		{"wide runes count double", 0, 1, strings.Repeat("界", MaxCellWidth/2+1), ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tb.SetText(tt.row, tt.col, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetText(%d, %d) err = %v, want %v", tt.row, tt.col, err, tt.wantErr)
			}
			if tt.wantErr == nil && tb.Text(tt.row, tt.col) != tt.text {
				t.Errorf("Text() = %q, want %q", tb.Text(tt.row, tt.col), tt.text)
			}
		})
	}
}

func TestTable_AddColumn(t *testing.T) {
	t.Parallel()

	var tb Table
	if err := tb.AddColumn("h", "1", "2"); err != nil {
		t.Fatalf("AddColumn on empty table: %v", err)
	}
	if err := tb.AddColumn("g", "3", "4"); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if tb.NumRows() != 3 || tb.NumColumns() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", tb.NumRows(), tb.NumColumns())
	}
	if got := tb.Text(2, 1); got != "4" {
		t.Errorf("Text(2, 1) = %q, want %q", got, "4")
	}
	if err := tb.AddColumn("short"); !errors.Is(err, ErrShape) {
		t.Errorf("AddColumn with wrong height: err = %v, want ErrShape", err)
	}
}

func TestTable_RejectedTextKeepsShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		add  func(*Table) error
	}{
		{"row", func(tb *Table) error { return tb.AddRow("ok", "bad\n") }},
		{"column", func(tb *Table) error { return tb.AddColumn("ok", "bad\t") }},
		{"wide row", func(tb *Table) error { return tb.AddRow(strings.Repeat("x", MaxCellWidth+1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tb Table
			if err := tt.add(&tb); err == nil {
				t.Fatal("expected an error")
			}
			if tb.NumRows() != 0 || tb.NumColumns() != 0 {
				t.Errorf("shape = %dx%d after rejected add, want 0x0", tb.NumRows(), tb.NumColumns())
			}
			if err := tb.AddRow("a", "b", "c"); err != nil {
				t.Errorf("AddRow after rejected add: %v", err)
			}
		})
	}
}

func TestTable_Limits(t *testing.T) {
	t.Parallel()

	var tb Table
	if err := tb.AddColumns(MaxColumns + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddColumns past limit: err = %v", err)
	}
	if err := tb.AddColumns(1); err != nil {
		t.Fatal(err)
	}
	if err := tb.AddRows(MaxRows); err != nil {
		t.Fatalf("AddRows(MaxRows): %v", err)
	}
	if err := tb.AddRow("x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddRow past limit: err = %v", err)
	}
}

func TestPrinter_RenderAligned(t *testing.T) {
	t.Parallel()

	var tb Table
	tb.SetTitle("Results")
	for _, row := range [][]string{
		{"scenario", "time"},
		{"delegate", "12 us"},
		{"日本語 event", "1,234 us"},
	} {
		if err := tb.AddRow(row...); err != nil {
			t.Fatal(err)
		}
	}

	p := NewPrinter()
	p.Frame = FrameBasic
	out := p.Render(&tb)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if strings.TrimSpace(stripANSI(lines[0])) != "Results" {
		t.Fatalf("first line = %q, want the title", lines[0])
	}
	frame := lines[1:]
	want := Width(frame[0])
	for i, l := range frame {
		if Width(l) != want {
			t.Errorf("line %d width = %d, want %d: %q", i, Width(l), want, l)
		}
	}
	for _, cell := range []string{"scenario", "delegate", "日本語 event", "1,234 us"} {
		if !strings.Contains(out, cell) {
			t.Errorf("rendered table missing %q:\n%s", cell, out)
		}
	}
}

func TestPrinter_EmptyTable(t *testing.T) {
	t.Parallel()

	var tb Table
	if got := tb.String(); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
	tb.SetTitle("t")
	if got := tb.String(); strings.TrimSpace(stripANSI(got)) != "t" {
		t.Errorf("titled empty table rendered %q", got)
	}
}

func TestParseFrame(t *testing.T) {
	t.Parallel()

	if f, err := ParseFrame("Rounded"); err != nil || f != FrameRounded {
		t.Errorf("ParseFrame(Rounded) = %v, %v", f, err)
	}
	if _, err := ParseFrame("dotted"); err == nil {
		t.Error("ParseFrame(dotted) should fail")
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"\x1b[1mbold\x1b[0m", 4},
		{"e\u0301", 1},
	}
	for _, tt := range tests {
		if got := Width(tt.in); got != tt.want {
			t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate kept = %q", got)
	}
	got := Truncate("abcdefghij", 5)
	if Width(got) > 5 || !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate = %q", got)
	}
}

func TestNumberFormatting(t *testing.T) {
	t.Parallel()

	if got := Count(10_000_000); got != "10,000,000" {
		t.Errorf("Count = %q", got)
	}
	if got := Micros(1234567 * time.Nanosecond); got != "1,234 us" {
		t.Errorf("Micros = %q", got)
	}
	if got := PerOp(1500*time.Nanosecond, 1000); got != "1.50 ns/op" {
		t.Errorf("PerOp = %q", got)
	}
	if got := PerOp(time.Second, 0); got != "N/A" {
		t.Errorf("PerOp with zero ops = %q", got)
	}
}
