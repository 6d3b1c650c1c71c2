// Package extract runs a small probe program inside a candidate Java
// runtime to read its own system properties. This is the only reliable
// way to learn a JVM's true identity: version strings in directory names
// lie, but java.version/java.vendor/os.arch as reported by the runtime
// itself do not.
package extract

import (
	"bufio"
	"context"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:embed javasrc/PropExtract.java
var propExtractSource []byte

// probeTimeout bounds both the compile and the run of the probe program;
// a hung or misbehaving "java" on PATH must not wedge a locator scan.
const probeTimeout = 10 * time.Second

// Properties extracts the requested system property names from the given
// java-compatible executable. It returns ok=false if the executable
// doesn't exist, the probe fails to compile or spawn, or the probe exits
// with an error. Output lines without an "=" are skipped, and a requested
// property the runtime doesn't define is simply absent from the returned
// map; callers check for the properties they need.
//
// The original implementation (see SPEC_FULL.md) ships a prebuilt class
// file. This port embeds the equivalent Java source and compiles it once
// per call into the same disposable temp directory the probe runs from,
// since this build has no javac available to produce the artifact ahead
// of time.
func Properties(ctx context.Context, logger *zap.SugaredLogger, javaExecutable string, props []string) (map[string]string, bool) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if _, err := os.Stat(javaExecutable); err != nil {
		return nil, false
	}

	tempDir, err := os.MkdirTemp("", "jvmutils-probe-")
	if err != nil {
		logger.Debugw("failed to create probe temp dir", "error", err)
		return nil, false
	}
	defer os.RemoveAll(tempDir)

	sourcePath := filepath.Join(tempDir, "PropExtract.java")
	if err := os.WriteFile(sourcePath, propExtractSource, 0o644); err != nil {
		logger.Debugw("failed to write probe source", "error", err)
		return nil, false
	}

	javac := compilerFor(javaExecutable)
	compileCtx, cancelCompile := context.WithTimeout(ctx, probeTimeout)
	defer cancelCompile()
	compile := exec.CommandContext(compileCtx, javac, "PropExtract.java")
	compile.Dir = tempDir
	if out, err := compile.CombinedOutput(); err != nil {
		logger.Debugw("failed to compile probe", "error", err, "output", string(out), "javac", javac)
		return nil, false
	}

	args := append([]string{"-Dfile.encoding=UTF8", "-cp", ".", "PropExtract"}, props...)
	runCtx, cancelRun := context.WithTimeout(ctx, probeTimeout)
	defer cancelRun()
	run := exec.CommandContext(runCtx, javaExecutable, args...)
	run.Dir = tempDir

	stdout, err := run.StdoutPipe()
	if err != nil {
		return nil, false
	}
	if err := run.Start(); err != nil {
		return nil, false
	}

	properties := make(map[string]string, len(props))
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		properties[name] = value
	}

	if err := run.Wait(); err != nil {
		logger.Debugw("probe process exited with error", "error", err)
		return nil, false
	}

	return properties, true
}

// compilerFor derives the javac path sitting next to the given java
// executable, falling back to "javac" on PATH if that doesn't exist.
func compilerFor(javaExecutable string) string {
	dir := filepath.Dir(javaExecutable)
	name := "javac"
	if strings.HasSuffix(strings.ToLower(javaExecutable), ".exe") {
		name = "javac.exe"
	}
	candidate := filepath.Join(dir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return "javac"
}
