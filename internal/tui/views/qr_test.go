package views

import (
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
)

func TestRenderQRHalvesRows(t *testing.T) {
	content := shareURI("sara@x.com")
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		t.Fatalf("qrcode.New: %v", err)
	}
	rows := len(qr.Bitmap())

	out, err := renderQR(content)
	if err != nil {
		t.Fatalf("renderQR: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if want := (rows + 1) / 2; len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("expected full blocks in output")
	}
}

func TestShareURI(t *testing.T) {
	if got := shareURI("sara@x.com"); got != "mailto:sara@x.com" {
		t.Errorf("shareURI = %q", got)
	}
}
