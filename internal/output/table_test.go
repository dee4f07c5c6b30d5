package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []string{"database"}, [][]string{
		{"VCdb"},
		{"PCdb"},
	})

	out := buf.String()
	if !strings.Contains(out, "DATABASE") {
		t.Fatalf("output missing auto-formatted header: %s", out)
	}
	if !strings.Contains(out, "VCdb") || !strings.Contains(out, "PCdb") {
		t.Fatalf("output missing rows: %s", out)
	}
}
