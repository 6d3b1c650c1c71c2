package locator

import (
	"context"
	"os"
	"path/filepath"

	"github.com/covers1624/jvmutils/install"
)

// GradleLocator finds Java installations provisioned by Gradle's own
// toolchain auto-detection, under ~/.gradle/jdks.
type GradleLocator struct{}

func NewGradleLocator() *GradleLocator {
	return &GradleLocator{}
}

func (l *GradleLocator) Locate(ctx context.Context, opts Options) []install.JavaInstall {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".gradle", "jdks")
	opts.logger().Debugw("searching for gradle toolchain installs", "dir", dir)

	var installs []install.JavaInstall
	scanFolder(ctx, &installs, opts, dir)
	return installs
}
