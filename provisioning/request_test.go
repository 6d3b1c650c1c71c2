package provisioning

import (
	"testing"

	"github.com/covers1624/jvmutils/install"
)

func TestNewProvisionRequestForSemver(t *testing.T) {
	req, ok := NewProvisionRequestForSemver("17.0.10+7")
	if !ok {
		t.Fatal("expected a parseable semver to succeed")
	}
	if req.Version() != install.Java17 {
		t.Fatalf("Version() = %v, want Java17", req.Version())
	}
	got, pinned := req.Semver()
	if !pinned || got != "17.0.10+7" {
		t.Fatalf("Semver() = (%q, %v), want (\"17.0.10+7\", true)", got, pinned)
	}
}

func TestNewProvisionRequestForSemverRejectsUnparseable(t *testing.T) {
	if _, ok := NewProvisionRequestForSemver("not-a-version"); ok {
		t.Fatal("expected an unparseable semver to fail")
	}
}

func TestProvisionRequestDefaults(t *testing.T) {
	req := NewProvisionRequest(install.Java21)
	if req.JREAllowed() {
		t.Error("expected JREAllowed to default to false")
	}
	if req.X86OnArm() {
		t.Error("expected X86OnArm to default to false")
	}
	if _, pinned := req.Semver(); pinned {
		t.Error("expected no pinned semver by default")
	}
}
