//go:build darwin

package locator

import (
	"context"

	"github.com/covers1624/jvmutils/install"
)

func (l *PlatformLocator) Locate(ctx context.Context, opts Options) []install.JavaInstall {
	opts.logger().Debug("searching for installs in common system locations")

	var installs []install.JavaInstall
	scanFolder(ctx, &installs, opts, "/Library/Java/JavaVirtualMachines")
	scanFolder(ctx, &installs, opts, "/System/Library/Java/JavaVirtualMachines")
	return installs
}
