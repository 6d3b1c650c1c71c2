// Package provisioning caches provisioned Java runtimes on disk and
// dispatches to vendor-specific Provisioners when the cache can't
// satisfy a request.
package provisioning

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/covers1624/jvmutils/hashing"
	"github.com/covers1624/jvmutils/install"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// InstallationManager is the entry point for provisioning: it loads any
// manifests already present in baseDir, serves requests from that cache
// when possible, and falls back to its configured Provisioners.
type InstallationManager struct {
	baseDir      string
	installs     map[string]Manifest
	provisioners []Provisioner
	logger       *zap.SugaredLogger
}

// NewInstallationManager creates baseDir if needed and loads every
// "*.json" manifest already present in it. A manifest that fails to
// parse is logged and skipped rather than treated as fatal — a corrupt
// cache entry shouldn't take down the whole engine.
func NewInstallationManager(baseDir string, logger *zap.SugaredLogger) (*InstallationManager, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating base dir %s: %w", baseDir, err)
	}

	resolved, err := filepath.EvalSymlinks(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base dir %s: %w", baseDir, err)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return nil, fmt.Errorf("resolving base dir %s: %w", baseDir, err)
	}

	installs := make(map[string]Manifest)
	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading base dir %s: %w", resolved, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(resolved, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warnw("failed to read manifest, ignoring", "path", path, "error", err)
			continue
		}
		var manifest Manifest
		if err := json.Unmarshal(data, &manifest); err != nil {
			logger.Warnw("failed to parse manifest, ignoring", "path", path, "error", err)
			continue
		}
		installs[manifest.ID] = manifest
	}

	return &InstallationManager{
		baseDir:  resolved,
		installs: installs,
		logger:   logger,
	}, nil
}

// WithProvisioner registers a fallback provisioner, tried in registration
// order when the cache can't satisfy a request.
func (m *InstallationManager) WithProvisioner(p Provisioner) *InstallationManager {
	m.provisioners = append(m.provisioners, p)
	return m
}

// Provide returns the home directory of a JVM satisfying request,
// reusing a previous provision if one matches, or dispatching to the
// registered provisioners in order until one succeeds.
func (m *InstallationManager) Provide(ctx context.Context, request *ProvisionRequest) (string, error) {
	if existing, ok := m.findExisting(request); ok {
		return existing, nil
	}

	for _, p := range m.provisioners {
		result, err := p.Provision(ctx, m.baseDir, request)
		if err != nil {
			m.logger.Warnw("provisioner failed to fulfill request", "provisioner", p.Name(), "error", err)
			continue
		}

		m.logger.Debugw("runtime provisioned", "install_dir", result.InstallDir)
		hash, err := hashing.HashDirectory(result.InstallDir)
		if err != nil {
			return "", fmt.Errorf("hashing provisioned install: %w", err)
		}

		relDir, err := filepath.Rel(m.baseDir, result.InstallDir)
		if err != nil {
			return "", fmt.Errorf("relativizing install dir: %w", err)
		}

		manifest := Manifest{
			ID:           m.newUniqueID(),
			Version:      result.Version,
			KnownVendor:  result.KnownVendor,
			Vendor:       result.Vendor,
			Semver:       result.Semver,
			Architecture: result.Architecture,
			InstallDir:   relDir,
			IsJdk:        result.IsJdk,
			Hash:         hash,
		}

		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding manifest: %w", err)
		}
		manifestPath := filepath.Join(m.baseDir, manifest.ID+".json")
		if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
			return "", fmt.Errorf("writing manifest %s: %w", manifestPath, err)
		}

		m.installs[manifest.ID] = manifest
		return install.GetHomeDir(filepath.Join(m.baseDir, manifest.InstallDir)), nil
	}

	return "", errors.New("no provisioners were able to fulfill the request")
}

// findExisting looks for a previously provisioned install satisfying
// request, preferring the newest matching semver build when more than
// one qualifies.
func (m *InstallationManager) findExisting(request *ProvisionRequest) (string, bool) {
	wantSemver, pinnedSemver := request.Semver()

	var candidates []Manifest
	for _, manifest := range m.installs {
		if !request.JREAllowed() && !manifest.IsJdk {
			continue
		}
		if manifest.Version != request.Version() {
			continue
		}
		if pinnedSemver && manifest.Semver != wantSemver {
			continue
		}
		candidates = append(candidates, manifest)
	}

	// Architecture compatibility is only enforced off Linux: there a
	// cached build must match the host architecture, or be x86_64 on an
	// aarch64 host when the request allows emulation. On Linux, cached
	// builds of any architecture are accepted.
	if runtime.GOOS != "linux" {
		if arch, ok := install.CurrentArchitecture(); ok {
			filtered := candidates[:0]
			for _, c := range candidates {
				if c.Architecture == arch ||
					(request.X86OnArm() && c.Architecture == install.X86_64 && arch == install.Aarch64) {
					filtered = append(filtered, c)
				}
			}
			candidates = filtered
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	chosen := newestBySemver(candidates)
	dir := install.GetHomeDir(filepath.Join(m.baseDir, chosen.InstallDir))
	m.logger.Debugw("found existing install satisfying request",
		"version", chosen.Version, "semver", chosen.Semver, "id", chosen.ID, "dir", dir)
	return dir, true
}

// newestBySemver picks the candidate with the greatest semver version,
// falling back to lexical comparison for any entry whose semver string
// doesn't parse (vendor builds occasionally carry non-semver suffixes).
func newestBySemver(candidates []Manifest) Manifest {
	best := candidates[0]
	bestVer, bestErr := semver.NewVersion(best.Semver)

	for _, c := range candidates[1:] {
		ver, err := semver.NewVersion(c.Semver)
		switch {
		case err == nil && bestErr == nil:
			if ver.GreaterThan(bestVer) {
				best, bestVer, bestErr = c, ver, err
			}
		case err != nil && bestErr != nil:
			if strings.Compare(c.Semver, best.Semver) > 0 {
				best, bestErr = c, err
			}
		case err == nil:
			best, bestVer, bestErr = c, ver, err
		}
	}
	return best
}

func (m *InstallationManager) newUniqueID() string {
	for {
		id := randomID(6)
		if _, exists := m.installs[id]; !exists {
			return id
		}
	}
}

func randomID(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read on a supported platform does not fail; if it
		// somehow does, degrade to a fixed-but-distinguishable id rather
		// than panicking mid-provision.
		for i := range buf {
			buf[i] = byte(i)
		}
	}
	id := make([]byte, n)
	for i, b := range buf {
		id[i] = idCharset[int(b)%len(idCharset)]
	}
	return string(id)
}
