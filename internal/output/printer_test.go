package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterRouting(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Info("checking %s", "catalog")
	p.Success("downloaded %d records", 7)
	p.Error("failed: %s", "boom")

	if !strings.Contains(out.String(), "checking catalog") {
		t.Fatalf("stdout missing info message: %s", out.String())
	}
	if !strings.Contains(out.String(), "[OK] downloaded 7 records") {
		t.Fatalf("stdout missing success message: %s", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] failed: boom") {
		t.Fatalf("stderr missing error message: %s", errOut.String())
	}
}
