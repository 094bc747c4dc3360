package handlers

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStoredResumeNameIgnoresClientPath(t *testing.T) {
	for _, clientName := range []string{
		"../../etc/cron.d/evil.txt",
		"..\\..\\windows\\evil.pdf",
		"/etc/passwd",
		"plain.docx",
	} {
		name := storedResumeName(clientName)
		if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			t.Errorf("%s: stored name %q carries path components", clientName, name)
		}
		dst := filepath.Join("uploads", name)
		if !strings.HasPrefix(dst, "uploads"+string(filepath.Separator)) {
			t.Errorf("%s: destination %q escapes the upload dir", clientName, dst)
		}
	}
}

func TestStoredResumeNameKeepsExtension(t *testing.T) {
	if ext := filepath.Ext(storedResumeName("CV.PDF")); ext != ".pdf" {
		t.Errorf("extension = %q, want .pdf", ext)
	}
	if ext := filepath.Ext(storedResumeName("noext")); ext != "" {
		t.Errorf("extension = %q, want empty", ext)
	}
}

func TestStoredResumeNameUnique(t *testing.T) {
	if storedResumeName("cv.txt") == storedResumeName("cv.txt") {
		t.Error("stored names must not collide across uploads")
	}
}
