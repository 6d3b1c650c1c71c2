package provisioning

import "github.com/covers1624/jvmutils/install"

// Manifest is the persisted record of a single runtime this engine has
// provisioned for itself, stored as "<id>.json" in the cache's base
// directory.
type Manifest struct {
	ID           string              `json:"id"`
	Version      install.JavaVersion `json:"version"`
	KnownVendor  *install.Vendor     `json:"known_vendor,omitempty"`
	Vendor       string              `json:"vendor"`
	Semver       string              `json:"semver"`
	Architecture install.Architecture `json:"architecture"`
	// InstallDir is stored relative to the manager's base directory, so
	// the whole cache can be moved without invalidating every manifest.
	InstallDir string `json:"install_dir"`
	IsJdk      bool   `json:"is_jdk"`
	Hash       string `json:"hash"`
}

// IntegrityError reports a downloaded archive that doesn't match the
// size or checksum a provisioner's catalog advertised for it.
type IntegrityError struct {
	Path     string
	Kind     string // "size" or "checksum"
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return "integrity check failed for " + e.Path + " (" + e.Kind + "): expected " + e.Expected + ", got " + e.Actual
}
