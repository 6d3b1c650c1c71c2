package locator

import (
	"context"
	"os"
	"path/filepath"

	"github.com/covers1624/jvmutils/install"
)

// IntelliJLocator finds Java installations downloaded by IntelliJ IDEA's
// own JDK download feature, under ~/.jdks.
type IntelliJLocator struct{}

func NewIntelliJLocator() *IntelliJLocator {
	return &IntelliJLocator{}
}

func (l *IntelliJLocator) Locate(ctx context.Context, opts Options) []install.JavaInstall {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".jdks")
	opts.logger().Debugw("searching for intellij toolchain installs", "dir", dir)

	var installs []install.JavaInstall
	scanFolder(ctx, &installs, opts, dir)
	return installs
}
