package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestStageCopiesUploadUnderUniqueName(t *testing.T) {
	dir := t.TempDir()
	staging := NewFileStagingService(dir)

	fh := makeFileHeader(t, "assets.csv", []byte("code,name\nA1,Laptop\n"))
	path, err := staging.Stage(fh)
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("staged outside the staging dir: %s", path)
	}
	if filepath.Base(path) == "assets.csv" {
		t.Error("staged name should not collide with the original")
	}
	if filepath.Ext(path) != ".csv" {
		t.Errorf("extension should survive staging, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "code,name\nA1,Laptop\n" {
		t.Errorf("content = %q", data)
	}
}

func TestStageRejectsBadUploads(t *testing.T) {
	staging := NewFileStagingService(t.TempDir())

	if _, err := staging.Stage(makeFileHeader(t, "assets.pdf", []byte("x"))); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("pdf: err = %v", err)
	}

	big := makeFileHeader(t, "assets.csv", []byte("x"))
	big.Size = maxUploadBytes + 1
	if _, err := staging.Stage(big); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("oversized: err = %v", err)
	}
}

func TestCleanupRemovesStagedFile(t *testing.T) {
	staging := NewFileStagingService(t.TempDir())

	path, err := staging.Stage(makeFileHeader(t, "assets.csv", []byte("code\n")))
	if err != nil {
		t.Fatal(err)
	}

	staging.Cleanup(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("staged file still present: %v", err)
	}

	// Cleaning up twice is harmless.
	staging.Cleanup(path)
	staging.Cleanup("")
}
