//go:build linux

package locator

import (
	"context"
	"os"
	"path/filepath"

	"github.com/covers1624/jvmutils/install"
)

func (l *PlatformLocator) Locate(ctx context.Context, opts Options) []install.JavaInstall {
	opts.logger().Debug("searching for installs in common system locations")

	var installs []install.JavaInstall

	// Oracle's RPM installer.
	scanFolder(ctx, &installs, opts, "/usr/java")

	// Common distro package locations.
	scanFolder(ctx, &installs, opts, "/usr/lib/jvm")
	scanFolder(ctx, &installs, opts, "/usr/lib32/jvm")

	// Manually extracted archives.
	scanFolder(ctx, &installs, opts, "/opt/jdk")
	scanFolder(ctx, &installs, opts, "/opt/jdks")

	if home, err := os.UserHomeDir(); err == nil {
		scanFolder(ctx, &installs, opts, filepath.Join(home, ".local", "jdks"))
	}

	return installs
}
