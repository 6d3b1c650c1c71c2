package adoptium

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/covers1624/jvmutils/install"
	"github.com/covers1624/jvmutils/provisioning"
)

func TestSplitArchiveExt(t *testing.T) {
	cases := []struct {
		path     string
		wantBase string
		wantExt  string
		wantOk   bool
	}{
		{"OpenJDK17U-jdk_x64_linux_hotspot_17.0.10_7.tar.gz", "OpenJDK17U-jdk_x64_linux_hotspot_17.0.10_7", ".tar.gz", true},
		{"OpenJDK17U-jdk_x64_windows_hotspot_17.0.10_7.zip", "OpenJDK17U-jdk_x64_windows_hotspot_17.0.10_7", ".zip", true},
		{"notanarchive.txt", "", "", false},
	}
	for _, tc := range cases {
		base, ext, ok := splitArchiveExt(tc.path)
		if base != tc.wantBase || ext != tc.wantExt || ok != tc.wantOk {
			t.Errorf("splitArchiveExt(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.path, base, ext, ok, tc.wantBase, tc.wantExt, tc.wantOk)
		}
	}
}

func TestBuildURLFeatureRelease(t *testing.T) {
	req := provisioning.NewProvisionRequest(install.Java17)
	url := buildURL(install.Linux, install.X86_64, req, false)
	want := apiBase + "/v3/assets/feature_releases/17/ga?project=jdk&image_type=jdk&vendor=eclipse&jvm_impl=hotspot&heap_size=normal&architecture=x64&os=linux"
	if url != want {
		t.Fatalf("buildURL = %q, want %q", url, want)
	}
}

func TestBuildURLPinnedSemver(t *testing.T) {
	req, ok := provisioning.NewProvisionRequestForSemver("17.0.10+7")
	if !ok {
		t.Fatal("expected semver request to parse")
	}
	url := buildURL(install.Windows, install.Aarch64, req, true)
	want := apiBase + "/v3/assets/version/17.0.10+7?project=jdk&image_type=jre&vendor=eclipse&jvm_impl=hotspot&heap_size=normal&architecture=aarch64&os=windows"
	if url != want {
		t.Fatalf("buildURL = %q, want %q", url, want)
	}
}

func TestProvisionDownloadsSelectsAndExtracts(t *testing.T) {
	archiveBytes := buildTestTarGz(t, "jdk-17.0.10+7/release", "JAVA_VERSION=\"17\"\n")
	sum := sha256.Sum256(archiveBytes)
	checksum := hex.EncodeToString(sum[:])

	var archiveURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/assets/feature_releases/17/ga", func(w http.ResponseWriter, r *http.Request) {
		releases := []apiRelease{{
			VersionData: struct {
				OpenJDKVersion string `json:"openjdk_version"`
			}{OpenJDKVersion: "17.0.10+7"},
			Binaries: []apiBinary{{
				ImageType: "jdk",
				Package: &apiPackage{
					Name:     "OpenJDK17U-jdk_x64_linux_hotspot_17.0.10_7.tar.gz",
					Link:     archiveURL,
					Size:     int64(len(archiveBytes)),
					Checksum: checksum,
				},
			}},
		}}
		_ = json.NewEncoder(w).Encode(releases)
	})
	mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archiveBytes)
	})

	server := httptest.NewServer(mux)
	defer server.Close()
	archiveURL = server.URL + "/archive"

	p := New(nil)
	// Point the provisioner at our test server instead of the real API.
	overrideAPIBase(t, server.URL)

	baseDir := t.TempDir()
	result, err := p.Provision(context.Background(), baseDir, provisioning.NewProvisionRequest(install.Java17))
	if err != nil {
		t.Fatalf("Provision failed: %v", err)
	}
	if result.Semver != "17.0.10+7" {
		t.Errorf("Semver = %q, want 17.0.10+7", result.Semver)
	}
	if !result.IsJdk {
		t.Error("expected IsJdk = true")
	}

	release, err := os.ReadFile(filepath.Join(result.InstallDir, "release"))
	if err != nil {
		t.Fatalf("expected extracted release file: %v", err)
	}
	if string(release) != "JAVA_VERSION=\"17\"\n" {
		t.Fatalf("unexpected release contents: %q", release)
	}
}

func overrideAPIBase(t *testing.T, base string) {
	t.Helper()
	original := apiBase
	apiBase = base
	t.Cleanup(func() { apiBase = original })
}

func buildTestTarGz(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	if err := tw.WriteHeader(&tar.Header{Name: name, Mode: 0o644, Size: int64(len(content))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
