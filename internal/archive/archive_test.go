package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestExtractZip(t *testing.T) {
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "jdk.zip")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writeZipFile(t, zw, "jdk-17.0.10+7/bin/java", "binary")
	writeZipFile(t, zw, "jdk-17.0.10+7/release", "JAVA_VERSION=\"17\"\n")
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(archivePath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(tmp, "out")
	if err := ExtractZip(archivePath, dest); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "jdk-17.0.10+7", "release"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "JAVA_VERSION=\"17\"\n" {
		t.Fatalf("unexpected release file contents: %q", got)
	}
}

func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
}

func TestExtractTarGz(t *testing.T) {
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "jdk.tar.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	writeTarFile(t, tw, "jdk-17.0.10+7/release", "JAVA_VERSION=\"17\"\n")
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(archivePath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(tmp, "out")
	if err := ExtractTarGz(archivePath, dest); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "jdk-17.0.10+7", "release"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "JAVA_VERSION=\"17\"\n" {
		t.Fatalf("unexpected release file contents: %q", got)
	}
}

func writeTarFile(t *testing.T, tw *tar.Writer, name, content string) {
	t.Helper()
	if err := tw.WriteHeader(&tar.Header{
		Name: name,
		Mode: 0o644,
		Size: int64(len(content)),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
}

func TestSafeJoinRejectsTraversal(t *testing.T) {
	if _, err := safeJoin(t.TempDir(), "../escape"); err == nil {
		t.Fatal("expected safeJoin to reject a path escaping the destination")
	}
}
