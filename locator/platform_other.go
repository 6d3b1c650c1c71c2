//go:build !linux && !darwin && !windows

package locator

import (
	"context"

	"github.com/covers1624/jvmutils/install"
)

// Locate is a no-op on platforms with no known conventional install
// locations. Gradle and IntelliJ locators still work everywhere, since
// their caches live under the user's home directory regardless of OS.
func (l *PlatformLocator) Locate(ctx context.Context, opts Options) []install.JavaInstall {
	opts.logger().Debug("no known platform install locations for this OS")
	return nil
}
