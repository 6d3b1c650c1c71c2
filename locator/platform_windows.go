//go:build windows

package locator

import (
	"context"

	"golang.org/x/sys/windows/registry"

	"github.com/covers1624/jvmutils/install"
)

// registryGroup describes one vendor's family of registry layouts: a set
// of base keys to enumerate immediate subkeys under, the suffix path
// appended to each subkey before reading the install path value, and the
// name of that value.
type registryGroup struct {
	baseKeys  []string
	keySuffix string
	pathKey   string
}

var (
	// Oracle's installer writes the path directly under the versioned key.
	oracleKeys = []string{
		`SOFTWARE\JavaSoft\Java Development Kit`,
		`SOFTWARE\JavaSoft\Java Runtime Environment`,
		`SOFTWARE\JavaSoft\JRE`,
		`SOFTWARE\JavaSoft\JDK`,
		`SOFTWARE\Wow6432Node\JavaSoft\Java Development Kit`,
		`SOFTWARE\Wow6432Node\JavaSoft\Java Runtime Environment`,
		`SOFTWARE\Wow6432Node\JavaSoft\JRE`,
		`SOFTWARE\Wow6432Node\JavaSoft\JDK`,
	}

	// AdoptOpenJDK, Adoptium's predecessor.
	adoptOpenJdkKeys = []string{
		`SOFTWARE\AdoptOpenJDK\JDK`,
		`SOFTWARE\AdoptOpenJDK\JRE`,
		`SOFTWARE\Wow6432Node\AdoptOpenJDK\JDK`,
		`SOFTWARE\Wow6432Node\AdoptOpenJDK\JRE`,
	}

	// Adoptium (Eclipse Temurin) MSI installers.
	adoptiumKeys = []string{
		`SOFTWARE\Eclipse Foundation\JDK`,
		`SOFTWARE\Eclipse Foundation\JRE`,
		`SOFTWARE\Wow6432Node\Eclipse Foundation\JDK`,
		`SOFTWARE\Wow6432Node\Eclipse Foundation\JRE`,
		`SOFTWARE\Eclipse Adoptium\JDK`,
		`SOFTWARE\Eclipse Adoptium\JRE`,
		`SOFTWARE\Wow6432Node\Eclipse Adoptium\JDK`,
		`SOFTWARE\Wow6432Node\Eclipse Adoptium\JRE`,
	}

	microsoftKeys = []string{
		`SOFTWARE\Microsoft\JDK`,
		`SOFTWARE\Microsoft\JRE`,
		`SOFTWARE\Wow6432Node\Microsoft\JDK`,
		`SOFTWARE\Wow6432Node\Microsoft\JRE`,
	}

	registryGroups = []registryGroup{
		{oracleKeys, "", "JavaHome"},
		{adoptOpenJdkKeys, `hotspot\MSI`, "Path"},
		{adoptiumKeys, `hotspot\MSI`, "Path"},
		{microsoftKeys, `hotspot\MSI`, "Path"},
	}

	// Fallback disk locations, in case a vendor's installer didn't
	// register a usable key (or was installed without elevation).
	diskPaths = []string{
		`C:\Program Files\AdoptOpenJDK`,
		`C:\Program Files\Eclipse Foundation`,
		`C:\Program Files\Eclipse Adoptium`,
		`C:\Program Files\Java`,
		`C:\Program Files\Microsoft`,
		`C:\Program Files (x86)\AdoptOpenJDK`,
		`C:\Program Files (x86)\Eclipse Foundation`,
		`C:\Program Files (x86)\Eclipse Adoptium`,
		`C:\Program Files (x86)\Java`,
		`C:\Program Files (x86)\Microsoft`,
	}
)

func (l *PlatformLocator) Locate(ctx context.Context, opts Options) []install.JavaInstall {
	var installs []install.JavaInstall

	opts.logger().Debug("searching for installs in common system registry locations")
	for _, group := range registryGroups {
		scanRegistryGroup(ctx, &installs, opts, group)
	}

	opts.logger().Debug("searching for installs in common system locations")
	for _, path := range diskPaths {
		scanFolder(ctx, &installs, opts, path)
	}

	return installs
}

func scanRegistryGroup(ctx context.Context, installs *[]install.JavaInstall, opts Options, group registryGroup) {
	for _, baseKey := range group.baseKeys {
		for _, subKey := range subKeyNames(baseKey) {
			full := baseKey + `\` + subKey
			if group.keySuffix != "" {
				full += `\` + group.keySuffix
			}
			path, ok := readStringValue(full, group.pathKey)
			if !ok {
				continue
			}
			findAddInstall(ctx, installs, opts, path)
		}
	}
}

func subKeyNames(key string) []string {
	opened, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer opened.Close()

	names, err := opened.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	return names
}

func readStringValue(key, valueName string) (string, bool) {
	opened, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer opened.Close()

	value, _, err := opened.GetStringValue(valueName)
	if err != nil {
		return "", false
	}
	return value, true
}
