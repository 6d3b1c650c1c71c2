package extract

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestCompilerForPrefersSiblingJavac(t *testing.T) {
	tmp := t.TempDir()
	bin := filepath.Join(tmp, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	javac := filepath.Join(bin, "javac")
	if err := os.WriteFile(javac, []byte{}, 0o755); err != nil {
		t.Fatal(err)
	}

	got := compilerFor(filepath.Join(bin, "java"))
	if got != javac {
		t.Fatalf("compilerFor = %q, want %q", got, javac)
	}
}

func TestCompilerForFallsBackToPath(t *testing.T) {
	got := compilerFor(filepath.Join(t.TempDir(), "bin", "java"))
	if got != "javac" {
		t.Fatalf("compilerFor = %q, want fallback %q", got, "javac")
	}
}

func TestPropertiesMissingExecutable(t *testing.T) {
	_, ok := Properties(context.Background(), nil, filepath.Join(t.TempDir(), "does-not-exist"), []string{"java.version"})
	if ok {
		t.Fatal("expected Properties to fail for a non-existent executable")
	}
}

// TestPropertiesAgainstRealJDK exercises the full compile+run round trip
// against whatever JDK is on PATH. It's skipped entirely when none is
// available so the suite stays green on machines without a JDK installed.
func TestPropertiesAgainstRealJDK(t *testing.T) {
	javaPath, err := exec.LookPath("java")
	if err != nil {
		t.Skip("no java executable on PATH")
	}

	props, ok := Properties(context.Background(), nil, javaPath, []string{"java.version", "java.vendor", "does.not.exist"})
	if !ok {
		t.Fatal("expected Properties to succeed against a real JDK")
	}
	if _, present := props["java.version"]; !present {
		t.Error("expected java.version to be present")
	}
	if _, present := props["does.not.exist"]; present {
		t.Error("did not expect an absent property to appear in the result")
	}
}
