package handlers

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wisecrew/careers/internal/config"
)

func testRouterWithUploads(t *testing.T) *Router {
	t.Helper()
	return &Router{cfg: &config.Config{UploadsDir: t.TempDir()}}
}

func TestSaveResume(t *testing.T) {
	r := testRouterWithUploads(t)

	content := []byte("%PDF-1.4 fake resume body")
	path, err := r.saveResume(bytes.NewReader(content), "cv.pdf")
	if err != nil {
		t.Fatalf("saveResume failed: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/") || !strings.HasSuffix(path, "-cv.pdf") {
		t.Errorf("unexpected public path %q", path)
	}

	stored, err := os.ReadFile(filepath.Join(r.cfg.UploadsDir, strings.TrimPrefix(path, "/uploads/")))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(stored, content) {
		t.Error("stored file does not match the upload")
	}
}

func TestSaveResumeRejectsOversizedFile(t *testing.T) {
	r := testRouterWithUploads(t)

	big := bytes.NewReader(make([]byte, maxResumeSize+1))
	_, err := r.saveResume(big, "huge.pdf")
	if !errors.Is(err, errResumeTooLarge) {
		t.Fatalf("expected errResumeTooLarge, got %v", err)
	}

	// Nothing may remain on disk after a rejected upload
	entries, readErr := os.ReadDir(r.cfg.UploadsDir)
	if readErr != nil {
		t.Fatalf("failed to read uploads dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("rejected upload left %d files behind", len(entries))
	}
}

func TestSaveResumeAcceptsExactLimit(t *testing.T) {
	r := testRouterWithUploads(t)

	exact := bytes.NewReader(make([]byte, maxResumeSize))
	if _, err := r.saveResume(exact, "limit.pdf"); err != nil {
		t.Fatalf("file at the limit should be accepted: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"cv.pdf", "cv.pdf"},
		{"../../etc/passwd", "passwd"},
		{"my resume (final).pdf", "my_resume__final_.pdf"},
		{"", "resume"},
	}
	for _, c := range cases {
		if got := sanitizeFilename(c.in); got != c.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
