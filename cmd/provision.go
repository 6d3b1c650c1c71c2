package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/covers1624/jvmutils/install"
	"github.com/covers1624/jvmutils/internal/cliutil"
	"github.com/covers1624/jvmutils/internal/config"
	"github.com/covers1624/jvmutils/provisioning"
	"github.com/covers1624/jvmutils/provisioning/adoptium"
)

var (
	provisionSemver   string
	provisionJRE      bool
	provisionX86OnArm bool
	provisionPath     string
)

var provisionCmd = &cobra.Command{
	Use:   "provision [version]",
	Short: "Provision a JVM, reusing a cached one if available",
	Long: `Provision a JVM matching the given major version, e.g. "jvmutils provision 17".

Use --semver to pin an exact vendor build instead, in which case the
version argument may be omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cacheDir := provisionPath
		if cacheDir == "" {
			cacheDir, err = config.DefaultCacheDir(cfg)
			if err != nil {
				return err
			}
		}

		var request *provisioning.ProvisionRequest
		switch {
		case provisionSemver != "":
			request, err = provisionRequestFromSemver(provisionSemver)
		case len(args) == 1:
			request, err = provisionRequestFromVersion(args[0])
		default:
			return fmt.Errorf("provide either a version argument or --semver")
		}
		if err != nil {
			return err
		}
		request.WithJREAllowed(provisionJRE).WithX86OnArm(provisionX86OnArm)

		manager, err := provisioning.NewInstallationManager(cacheDir, logger)
		if err != nil {
			return fmt.Errorf("initializing installation cache at %s: %w", cacheDir, err)
		}
		manager.WithProvisioner(adoptium.New(logger))

		cliutil.PrintInfo(fmt.Sprintf("resolving a JVM for %s", request.Version()))
		home, err := manager.Provide(context.Background(), request)
		if err != nil {
			return err
		}

		cliutil.PrintSuccess(home)
		return nil
	},
}

func provisionRequestFromVersion(version string) (*provisioning.ProvisionRequest, error) {
	parsed, ok := install.ParseJavaVersion(version)
	if !ok {
		return nil, fmt.Errorf("unrecognized java version %q", version)
	}
	return provisioning.NewProvisionRequest(parsed), nil
}

func provisionRequestFromSemver(semver string) (*provisioning.ProvisionRequest, error) {
	request, ok := provisioning.NewProvisionRequestForSemver(semver)
	if !ok {
		return nil, fmt.Errorf("could not derive a major version from semver %q", semver)
	}
	return request, nil
}

func init() {
	provisionCmd.Flags().StringVar(&provisionSemver, "semver", "", "pin an exact vendor build, e.g. 17.0.10+7 (overrides the version argument)")
	provisionCmd.Flags().BoolVar(&provisionJRE, "jre", false, "allow a JRE to satisfy the request")
	provisionCmd.Flags().BoolVar(&provisionX86OnArm, "x86-on-arm", false, "allow an x86_64 build to satisfy an aarch64 request via emulation")
	provisionCmd.Flags().StringVar(&provisionPath, "path", "", "override the provisioning cache directory (default: the config's cache_dir, or ~/.jvmutils/cache)")
}
