package cli

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeviz/pkg/render"
)

func newTestServer(t *testing.T, input string) *previewServer {
	t.Helper()
	var buf bytes.Buffer
	return &previewServer{
		input:    input,
		noConfig: true,
		logger:   newLogger(&buf, log.ErrorLevel),
	}
}

func TestHandleIndex(t *testing.T) {
	ps := newTestServer(t, "prog.ast")

	rec := httptest.NewRecorder()
	ps.handleIndex(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `src="/svg"`) {
		t.Errorf("index page does not embed the SVG endpoint:\n%s", body)
	}
	if !strings.Contains(body, "prog.ast") {
		t.Errorf("index page does not name the input file:\n%s", body)
	}
}

func TestHandleImageMissingInput(t *testing.T) {
	ps := newTestServer(t, filepath.Join(t.TempDir(), "missing.ast"))

	rec := httptest.NewRecorder()
	handler := ps.handleImage(render.FormatSVG, "image/svg+xml")
	handler(rec, httptest.NewRequest("GET", "/svg", nil))

	if rec.Code != 500 {
		t.Errorf("status = %d, want 500 for missing input", rec.Code)
	}
}
