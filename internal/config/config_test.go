package config

import (
	"runtime"
	"testing"
)

func TestLoadReturnsDefaultWhenMissing(t *testing.T) {
	home := t.TempDir()
	envVar := "HOME"
	if runtime.GOOS == "windows" {
		envVar = "USERPROFILE"
	}
	t.Setenv(envVar, home)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("expected default config, got %+v", cfg)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	home := t.TempDir()
	envVar := "HOME"
	if runtime.GOOS == "windows" {
		envVar = "USERPROFILE"
	}
	t.Setenv(envVar, home)

	want := Config{CacheDir: "/tmp/jvms", UseJavaw: true, JdkOnly: true, X86OnArm: true}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestDefaultCacheDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	envVar := "HOME"
	if runtime.GOOS == "windows" {
		envVar = "USERPROFILE"
	}
	t.Setenv(envVar, home)

	dir, err := DefaultCacheDir(Default())
	if err != nil {
		t.Fatal(err)
	}
	if dir == "" {
		t.Fatal("expected a non-empty default cache dir")
	}
}

func TestDefaultCacheDirHonorsOverride(t *testing.T) {
	dir, err := DefaultCacheDir(Config{CacheDir: "/custom/cache"})
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/custom/cache" {
		t.Fatalf("DefaultCacheDir = %q, want /custom/cache", dir)
	}
}
