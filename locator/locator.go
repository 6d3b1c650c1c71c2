// Package locator discovers Java installations already present on a
// machine: in platform-conventional install directories, in the system
// registry on Windows, and in the toolchain caches IntelliJ IDEA and
// Gradle manage on their own.
package locator

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/covers1624/jvmutils/install"
)

// Options controls which installations a Locator set returns.
type Options struct {
	// UseJavaw selects javaw.exe over java.exe on Windows. Has no effect
	// elsewhere.
	UseJavaw bool
	// IgnoreOpenJ9 drops any install whose VM name identifies it as
	// OpenJ9 rather than HotSpot.
	IgnoreOpenJ9 bool
	// JdkOnly keeps only installs that carry a javac alongside java.
	JdkOnly bool
	// Filter, if non-nil, keeps only installs matching this exact
	// language version.
	Filter *install.JavaVersion
	// VendorFilter, if non-nil, keeps only installs whose KnownVendor
	// matches exactly; installs with no recognized vendor are dropped.
	VendorFilter *install.Vendor

	Logger *zap.SugaredLogger
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// Locator finds Java installations somewhere on the system.
type Locator interface {
	Locate(ctx context.Context, opts Options) []install.JavaInstall
}

// Builder assembles a set of Locators and runs them together,
// deduplicating and filtering the combined results.
type Builder struct {
	opts     Options
	locators []Locator
}

// NewBuilder returns an empty Builder. Use the With* methods to attach
// locators before calling Locate.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) UseJavaw() *Builder {
	b.opts.UseJavaw = true
	return b
}

func (b *Builder) IgnoreOpenJ9() *Builder {
	b.opts.IgnoreOpenJ9 = true
	return b
}

func (b *Builder) JdkOnly() *Builder {
	b.opts.JdkOnly = true
	return b
}

func (b *Builder) Filter(version install.JavaVersion) *Builder {
	b.opts.Filter = &version
	return b
}

func (b *Builder) VendorFilter(vendor install.Vendor) *Builder {
	b.opts.VendorFilter = &vendor
	return b
}

func (b *Builder) WithLogger(logger *zap.SugaredLogger) *Builder {
	b.opts.Logger = logger
	return b
}

func (b *Builder) WithPlatformLocator() *Builder {
	return b.WithLocator(NewPlatformLocator())
}

func (b *Builder) WithGradleLocator() *Builder {
	return b.WithLocator(NewGradleLocator())
}

func (b *Builder) WithIntelliJLocator() *Builder {
	return b.WithLocator(NewIntelliJLocator())
}

func (b *Builder) WithLocator(locator Locator) *Builder {
	b.locators = append(b.locators, locator)
	return b
}

// Locate runs every attached locator and returns the deduplicated,
// filtered union of everything they found.
func (b *Builder) Locate(ctx context.Context) []install.JavaInstall {
	var installs []install.JavaInstall
	for _, l := range b.locators {
		for _, candidate := range l.Locate(ctx, b.opts) {
			addInstall(&installs, b.opts, candidate)
		}
	}
	return installs
}

// addInstall appends candidate to installs unless it's already present
// (by JavaHome) or excluded by the active filter options.
//
// jdkOnly keeps installs where IsJdk is true — the original source this
// was ported from inverts this check, silently keeping only JREs when
// --jdk-only is requested. That's a bug, not a feature; corrected here.
func addInstall(installs *[]install.JavaInstall, opts Options, candidate install.JavaInstall) {
	for _, existing := range *installs {
		if existing.JavaHome == candidate.JavaHome {
			return
		}
	}
	if opts.Filter != nil && *opts.Filter != candidate.LangVersion {
		return
	}
	if opts.VendorFilter != nil && (candidate.KnownVendor == nil || *candidate.KnownVendor != *opts.VendorFilter) {
		return
	}
	if opts.IgnoreOpenJ9 && candidate.IsOpenJ9 {
		return
	}
	if opts.JdkOnly && !candidate.IsJdk {
		return
	}
	*installs = append(*installs, candidate)
}

// findAddInstall probes the java executable under path's home directory
// (see install.GetHomeDir) and, if it parses into a valid install,
// appends it via addInstall.
func findAddInstall(ctx context.Context, installs *[]install.JavaInstall, opts Options, path string) bool {
	executable := install.GetJavaExecutable(install.GetHomeDir(path), opts.UseJavaw)
	if _, err := os.Stat(executable); err != nil {
		return false
	}

	candidate, ok := install.ParseInstall(ctx, opts.logger(), executable)
	if !ok {
		return false
	}
	opts.logger().Debugw("found install", "version", candidate.LangVersion, "home", candidate.JavaHome)

	addInstall(installs, opts, candidate)
	return true
}

// listDir returns the entries of dir, or nil if it can't be read. Callers
// treat an unreadable directory the same as an empty one — a locator
// scanning a dozen conventional paths expects most of them not to exist.
func listDir(dir string) []os.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	return entries
}

// scanFolder walks the immediate children of dir looking for Java
// installations. Each child is tried directly; if that fails and the
// child contains exactly one entry, that single entry is tried too
// (the common "extracted archive has one wrapper directory" shape).
func scanFolder(ctx context.Context, installs *[]install.JavaInstall, opts Options, dir string) {
	opts.logger().Debugw("scanning for installs", "dir", dir)
	for _, entry := range listDir(dir) {
		candidatePath := filepath.Join(dir, entry.Name())
		info, err := os.Stat(candidatePath)
		if err != nil || !info.IsDir() {
			continue
		}
		if findAddInstall(ctx, installs, opts, candidatePath) {
			continue
		}

		inner := listDir(candidatePath)
		if len(inner) == 1 {
			findAddInstall(ctx, installs, opts, filepath.Join(candidatePath, inner[0].Name()))
		}
	}
}
