// Package adoptium provisions JVM builds from the Eclipse Adoptium
// (Temurin) API.
package adoptium

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/covers1624/jvmutils/hashing"
	"github.com/covers1624/jvmutils/install"
	"github.com/covers1624/jvmutils/internal/archive"
	"github.com/covers1624/jvmutils/provisioning"
)

// apiBase is a var rather than a const so tests can point it at a local
// httptest server.
var apiBase = "https://api.adoptium.net"

// Provisioner fetches and installs Temurin builds from the Adoptium API.
type Provisioner struct {
	client *retryablehttp.Client
	logger *zap.SugaredLogger
}

// New builds a Provisioner with a retrying HTTP client tuned for a
// public API that occasionally throttles or blips.
func New(logger *zap.SugaredLogger) *Provisioner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.HTTPClient.Timeout = 5 * time.Minute
	client.Logger = nil

	return &Provisioner{client: client, logger: logger}
}

func (p *Provisioner) Name() string { return "Adoptium/Eclipse Temurin" }

func (p *Provisioner) Provision(ctx context.Context, baseDir string, request *provisioning.ProvisionRequest) (*provisioning.ProvisionResult, error) {
	p.logger.Infow("searching for a compatible adoptium release", "version", request.Version())

	selected, err := p.selectCompatible(ctx, request)
	if err != nil {
		return nil, err
	}
	p.logger.Infow("selected adoptium release", "name", selected.Name, "version", selected.OpenJDKVersion)

	archivePath := filepath.Join(baseDir, selected.Name)
	if err := p.download(ctx, archivePath, selected); err != nil {
		return nil, err
	}
	defer os.Remove(archivePath)

	installDir, err := extract(baseDir, archivePath)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", archivePath, err)
	}

	knownVendor := install.Temurin
	return &provisioning.ProvisionResult{
		Version:      request.Version(),
		KnownVendor:  &knownVendor,
		Vendor:       "Temurin",
		Semver:       selected.OpenJDKVersion,
		Architecture: selected.Architecture,
		InstallDir:   installDir,
		IsJdk:        selected.ImageType == "jdk",
	}, nil
}

// extract unpacks archivePath into a directory named after it under
// baseDir, then unwraps the single top-level directory the archive
// almost always contains (e.g. "jdk-17.0.10+7") so InstallDir points at
// the actual JAVA_HOME rather than a wrapper directory. Extracting every
// architecture into its own uniquely-named directory (rather than a
// shared "jdk-17" path) lets multiple architectures' builds of the same
// version coexist in the cache.
func extract(baseDir, archivePath string) (string, error) {
	base, ext, ok := splitArchiveExt(archivePath)
	if !ok {
		return "", fmt.Errorf("unrecognized archive extension: %s", archivePath)
	}
	dest := filepath.Join(baseDir, base)

	switch ext {
	case ".zip":
		if err := archive.ExtractZip(archivePath, dest); err != nil {
			return "", err
		}
	case ".tar.gz":
		if err := archive.ExtractTarGz(archivePath, dest); err != nil {
			return "", err
		}
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		return "", err
	}
	if len(entries) != 1 {
		return dest, nil
	}
	return filepath.Join(dest, entries[0].Name()), nil
}

func splitArchiveExt(path string) (base, ext string, ok bool) {
	name := filepath.Base(path)
	switch {
	case strings.HasSuffix(name, ".tar.gz"):
		return name[:len(name)-len(".tar.gz")], ".tar.gz", true
	case strings.HasSuffix(name, ".zip"):
		return name[:len(name)-len(".zip")], ".zip", true
	default:
		return "", "", false
	}
}

func (p *Provisioner) download(ctx context.Context, dest string, selected *selectedRelease) error {
	p.logger.Infow("downloading archive", "url", selected.Link, "size", humanize.Bytes(uint64(selected.Size)))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, selected.Link, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", selected.Link, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requesting %s: unexpected status %s", selected.Link, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	written, err := io.Copy(out, resp.Body)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("downloading %s: %w", selected.Link, err)
	}
	if closeErr != nil {
		return closeErr
	}

	if written != selected.Size {
		return &provisioning.IntegrityError{
			Path:     dest,
			Kind:     "size",
			Expected: humanize.Bytes(uint64(selected.Size)),
			Actual:   humanize.Bytes(uint64(written)),
		}
	}

	sum, err := hashing.Sha256File(dest)
	if err != nil {
		return err
	}
	if sum != selected.Checksum {
		return &provisioning.IntegrityError{Path: dest, Kind: "checksum", Expected: selected.Checksum, Actual: sum}
	}
	return nil
}

// selectCompatible implements Adoptium's selection cascade: try an exact
// match first, then loosen the jre/jdk requirement, then (off Linux,
// when the caller opted in) retry entirely on x86_64 for aarch64 hosts
// that can run it under emulation.
func (p *Provisioner) selectCompatible(ctx context.Context, request *provisioning.ProvisionRequest) (*selectedRelease, error) {
	osName, ok := install.CurrentOS()
	if !ok {
		return nil, fmt.Errorf("unsupported host operating system %q", osNameFallback())
	}
	arch, ok := install.CurrentArchitecture()
	if !ok {
		return nil, fmt.Errorf("unsupported host architecture")
	}

	if release, err := p.apiRequest(ctx, osName, arch, request, request.JREAllowed()); err == nil {
		return release, nil
	}
	if request.JREAllowed() {
		if release, err := p.apiRequest(ctx, osName, arch, request, false); err == nil {
			return release, nil
		}
	}

	if arch == install.Aarch64 && osName != install.Linux && request.X86OnArm() {
		if release, err := p.apiRequest(ctx, osName, install.X86_64, request, request.JREAllowed()); err == nil {
			return release, nil
		}
		if request.JREAllowed() {
			if release, err := p.apiRequest(ctx, osName, install.X86_64, request, false); err == nil {
				return release, nil
			}
		}
	}

	return nil, fmt.Errorf("no compatible adoptium release found for %v on %v/%v", request.Version(), osName, arch)
}

func osNameFallback() string { return "unknown" }

func (p *Provisioner) apiRequest(ctx context.Context, osName install.OS, arch install.Architecture, request *provisioning.ProvisionRequest, jre bool) (*selectedRelease, error) {
	url := buildURL(osName, arch, request, jre)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	var releases []apiRelease
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, fmt.Errorf("no releases returned for %s", url)
	}
	if len(releases[0].Binaries) == 0 || releases[0].Binaries[0].Package == nil {
		return nil, fmt.Errorf("release carries no downloadable package")
	}

	binary := releases[0].Binaries[0]
	pkg := binary.Package
	return &selectedRelease{
		Name:           pkg.Name,
		Link:           pkg.Link,
		Size:           pkg.Size,
		Checksum:       pkg.Checksum,
		ImageType:      binary.ImageType,
		OpenJDKVersion: releases[0].VersionData.OpenJDKVersion,
		Architecture:   arch,
	}, nil
}

func buildURL(osName install.OS, arch install.Architecture, request *provisioning.ProvisionRequest, jre bool) string {
	var b strings.Builder
	b.WriteString(apiBase)
	b.WriteString("/v3/assets")
	if semver, ok := request.Semver(); ok {
		b.WriteString("/version/")
		b.WriteString(semver)
	} else {
		b.WriteString("/feature_releases/")
		b.WriteString(request.Version().ShortString())
		b.WriteString("/ga")
	}
	b.WriteString("?project=jdk")
	b.WriteString("&image_type=")
	if jre {
		b.WriteString("jre")
	} else {
		b.WriteString("jdk")
	}
	b.WriteString("&vendor=eclipse")
	b.WriteString("&jvm_impl=hotspot")
	b.WriteString("&heap_size=normal")
	b.WriteString("&architecture=")
	b.WriteString(adoptiumArch(arch))
	b.WriteString("&os=")
	b.WriteString(adoptiumOS(osName))
	return b.String()
}

func adoptiumArch(arch install.Architecture) string {
	switch arch {
	case install.X86:
		return "x86"
	case install.X86_64:
		return "x64"
	case install.Arm:
		return "arm"
	case install.Aarch64:
		return "aarch64"
	case install.Powerpc:
		return "ppc"
	case install.Powerpc64:
		return "ppc64"
	default:
		return "unknown"
	}
}

func adoptiumOS(osName install.OS) string {
	switch osName {
	case install.Linux:
		return "linux"
	case install.MacOS:
		return "mac"
	case install.Windows:
		return "windows"
	default:
		return "unknown"
	}
}

type selectedRelease struct {
	Name           string
	Link           string
	Size           int64
	Checksum       string
	ImageType      string
	OpenJDKVersion string
	Architecture   install.Architecture
}

type apiRelease struct {
	VersionData struct {
		OpenJDKVersion string `json:"openjdk_version"`
	} `json:"version_data"`
	Binaries []apiBinary `json:"binaries"`
}

type apiBinary struct {
	ImageType string      `json:"image_type"`
	Package   *apiPackage `json:"package"`
}

type apiPackage struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
}
