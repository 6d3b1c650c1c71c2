package install

import (
	"context"

	"go.uber.org/zap"

	"github.com/covers1624/jvmutils/extract"
)

// javaProperties is the exact set of system properties probed to build a
// JavaInstall. Order matters only for readability; extract.Properties
// returns a map.
var javaProperties = []string{
	"java.home",
	"java.version",
	"java.vendor",
	"os.arch",
	"java.vm.name",
	"java.vm.version",
	"java.runtime.name",
	"java.runtime.version",
	"java.class.version",
}

// ParseInstall probes the given candidate executable and builds a
// JavaInstall from the properties it reports. The executable need not
// exist beforehand — a missing or non-functional java simply yields
// ok=false, the same as every other failure mode here.
func ParseInstall(ctx context.Context, logger *zap.SugaredLogger, executable string) (JavaInstall, bool) {
	props, ok := extract.Properties(ctx, logger, executable, javaProperties)
	if !ok {
		return JavaInstall{}, false
	}

	javaHome, present := props["java.home"]
	if !present {
		return JavaInstall{}, false
	}
	javaHome = NormalizeJavaHome(javaHome)

	vendor, vendorOk := props["java.vendor"]
	implName, implNameOk := props["java.vm.name"]
	implVersion, implVersionOk := props["java.version"]
	runtimeName, runtimeNameOk := props["java.runtime.name"]
	runtimeVersion, runtimeVersionOk := props["java.runtime.version"]
	rawArch, archOk := props["os.arch"]
	if !vendorOk || !implNameOk || !implVersionOk || !runtimeNameOk || !runtimeVersionOk || !archOk {
		return JavaInstall{}, false
	}

	arch, ok := ParseArchitecture(rawArch)
	if !ok {
		return JavaInstall{}, false
	}

	return NewJavaInstall(javaHome, vendor, implName, implVersion, runtimeName, runtimeVersion, arch)
}
