// Package install models a single discovered or provisioned Java
// installation: its normalized version/architecture/vendor identity and
// the filesystem conventions used to locate its executables.
package install

import (
	"path/filepath"
	"runtime"
	"strings"
)

// JavaInstall is the authoritative discovery record for a single JVM
// installation, as extracted from the runtime's own system properties.
type JavaInstall struct {
	LangVersion JavaVersion

	JavaHome string

	Vendor      string
	KnownVendor *Vendor

	ImplName       string
	ImplVersion    string
	RuntimeName    string
	RuntimeVersion string

	Architecture Architecture

	// IsOpenJ9 is true iff ImplName contains the substring "j9".
	IsOpenJ9 bool
	// IsJdk is true iff the javac executable exists alongside java.
	IsJdk bool
}

// NewJavaInstall builds a JavaInstall from properties already extracted
// from a candidate runtime, deriving the version/vendor/openj9/jdk flags.
// javaHome is stored as given; ParseInstall applies NormalizeJavaHome
// before calling this. It returns false if the implementation version
// can't be parsed into a known JavaVersion.
func NewJavaInstall(javaHome, vendor, implName, implVersion, runtimeName, runtimeVersion string, arch Architecture) (JavaInstall, bool) {
	version, ok := ParseJavaVersion(implVersion)
	if !ok {
		return JavaInstall{}, false
	}

	known, knownOk := ParseVendor(vendor)
	var knownVendor *Vendor
	if knownOk {
		knownVendor = &known
	}

	inst := JavaInstall{
		LangVersion:    version,
		JavaHome:       javaHome,
		Vendor:         vendor,
		KnownVendor:    knownVendor,
		ImplName:       implName,
		ImplVersion:    implVersion,
		RuntimeName:    runtimeName,
		RuntimeVersion: runtimeVersion,
		Architecture:   arch,
		IsOpenJ9:       strings.Contains(implName, "j9"),
	}
	inst.IsJdk = pathExists(GetExecutable(javaHome, "javac"))
	return inst, true
}

// GetHomeDir resolves the potentially platform-specific offset from an
// installation directory to the directory that actually contains `bin`.
// On macOS this is `Contents/Home`; everywhere else it's the install
// directory itself.
func GetHomeDir(installDir string) string {
	if runtime.GOOS == "darwin" {
		return filepath.Join(installDir, "Contents", "Home")
	}
	return installDir
}

// GetBinDir resolves the `bin` directory for a given installation
// directory, transparently applying GetHomeDir.
func GetBinDir(installDir string) string {
	return filepath.Join(GetHomeDir(installDir), "bin")
}

// GetJavaExecutable resolves the `java` executable path for a given home
// directory. On Windows, useJavaw selects `javaw.exe` (no console window)
// over `java.exe`; elsewhere it has no effect.
func GetJavaExecutable(homeDir string, useJavaw bool) string {
	name := "java"
	if runtime.GOOS == "windows" && useJavaw {
		name = "javaw"
	}
	return GetExecutable(homeDir, name)
}

// GetExecutable resolves the path to a named executable within a home
// directory's `bin`, applying the platform executable suffix.
func GetExecutable(homeDir, executable string) string {
	path := filepath.Join(homeDir, "bin", executable)
	if runtime.GOOS == "windows" {
		path += ".exe"
	}
	return path
}

// NormalizeJavaHome rewrites a java_home that points into a JRE nested
// inside a JDK (java_home ends in "jre" and its parent has a bin
// directory) to the JDK root instead. Two installs with equal java_home
// are considered identical by the locator; this normalization ensures a
// JRE-inside-a-JDK reports the same identity as the JDK itself.
func NormalizeJavaHome(javaHome string) string {
	if filepath.Base(javaHome) != "jre" {
		return javaHome
	}
	parent := filepath.Dir(javaHome)
	if pathIsDir(filepath.Join(parent, "bin")) {
		return parent
	}
	return javaHome
}
