package provisioning

import (
	"context"

	"github.com/covers1624/jvmutils/install"
)

// ProvisionRequest describes what the caller needs a JVM for: which
// language version, optionally an exact vendor semver build, and how
// flexible the engine may be about substitutes.
type ProvisionRequest struct {
	version    install.JavaVersion
	semver     *string
	jreAllowed bool
	x86OnArm   bool
}

// NewProvisionRequest builds a request for any build of the given major
// language version.
func NewProvisionRequest(version install.JavaVersion) *ProvisionRequest {
	return &ProvisionRequest{version: version}
}

// NewProvisionRequestForSemver builds a request pinned to an exact
// vendor semver build, such as "17.0.10+7". The major version is derived
// from the semver string itself; ok is false if that fails.
func NewProvisionRequestForSemver(semver string) (*ProvisionRequest, bool) {
	version, ok := install.ParseJavaVersion(semver)
	if !ok {
		return nil, false
	}
	return &ProvisionRequest{version: version, semver: &semver}, true
}

// WithJREAllowed controls whether a JRE may fulfill the request. When
// true, a cached JRE may satisfy the request and a fresh provision may
// fetch a JRE; a JDK is never excluded either way. Defaults to false (a
// JDK is required).
func (r *ProvisionRequest) WithJREAllowed(allowed bool) *ProvisionRequest {
	r.jreAllowed = allowed
	return r
}

// WithX86OnArm allows an aarch64 request to be fulfilled by an x86_64
// build running under emulation (Rosetta 2 on macOS, WoW on Windows).
// Has no effect on Linux, where aarch64 builds are a first-class target.
func (r *ProvisionRequest) WithX86OnArm(allowed bool) *ProvisionRequest {
	r.x86OnArm = allowed
	return r
}

func (r *ProvisionRequest) Version() install.JavaVersion { return r.version }
func (r *ProvisionRequest) Semver() (string, bool) {
	if r.semver == nil {
		return "", false
	}
	return *r.semver, true
}
func (r *ProvisionRequest) JREAllowed() bool { return r.jreAllowed }
func (r *ProvisionRequest) X86OnArm() bool   { return r.x86OnArm }

// ProvisionResult is what a Provisioner hands back after successfully
// installing a runtime: enough identity information for the manager to
// build a Manifest around it.
type ProvisionResult struct {
	Version      install.JavaVersion
	KnownVendor  *install.Vendor
	Vendor       string
	Semver       string
	Architecture install.Architecture
	InstallDir   string
	IsJdk        bool
}

// Provisioner fetches and installs a JVM build satisfying a
// ProvisionRequest, returning where it was extracted to.
type Provisioner interface {
	Name() string
	Provision(ctx context.Context, baseDir string, request *ProvisionRequest) (*ProvisionResult, error)
}
