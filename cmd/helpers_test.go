package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inovacc/ghexplorer/internal/model"
)

func TestCenterString(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"test", 10, "   test   "},
		{"test", 4, "test"},
		{"testing", 4, "testing"},
		{"ab", 5, " ab  "},
		{"日本", 4, " 日本 "},
	}

	for _, tt := range tests {
		if got := centerString(tt.input, tt.width); got != tt.want {
			t.Errorf("centerString(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"test", 10, "test"},
		{"test", 4, "test"},
		{"testing", 5, "te..."},
		{"testing", 3, "tes"},
		{"日本語のリポジトリ", 5, "日本..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPrintInfoBox(t *testing.T) {
	var buf bytes.Buffer

	printInfoBox(&buf, "Title", map[string]string{
		"a":    "1",
		"long": strings.Repeat("x", 200),
	}, []string{"a", "missing", "long"})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}

	for _, l := range lines {
		if n := len([]rune(l)); n != boxWidth {
			t.Errorf("line %q has width %d, want %d", l, n, boxWidth)
		}
	}
}

func TestPrintProjects(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printProjects(&buf, nil); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(buf.String(), "No repositories saved.") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("in order", func(t *testing.T) {
		var buf bytes.Buffer

		err := printProjects(&buf, []model.Project{
			{FullName: "a/b", Description: "first"},
			{FullName: "c/d"},
		})
		if err != nil {
			t.Fatal(err)
		}

		out := buf.String()
		if strings.Index(out, "a/b") > strings.Index(out, "c/d") {
			t.Errorf("order not kept: %q", out)
		}

		if !strings.Contains(out, "first") {
			t.Errorf("description missing: %q", out)
		}
	})
}
