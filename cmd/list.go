package cmd

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/covers1624/jvmutils/install"
	"github.com/covers1624/jvmutils/internal/cliutil"
	"github.com/covers1624/jvmutils/locator"
)

var (
	listJdkOnly      bool
	listIgnoreOpenJ9 bool
	listUseJavaw     bool
	listVersionFlag  string
	listVendorFlag   string
	listJSON         bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Java installations already present on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		builder := locator.NewBuilder().
			WithLogger(logger).
			WithPlatformLocator().
			WithGradleLocator().
			WithIntelliJLocator()

		if listJdkOnly {
			builder.JdkOnly()
		}
		if listIgnoreOpenJ9 {
			builder.IgnoreOpenJ9()
		}
		if listUseJavaw {
			builder.UseJavaw()
		}
		if listVersionFlag != "" {
			version, ok := install.ParseJavaVersion(listVersionFlag)
			if !ok {
				return fmt.Errorf("unrecognized java version %q", listVersionFlag)
			}
			builder.Filter(version)
		}
		if listVendorFlag != "" {
			vendor, ok := install.ParseVendor(listVendorFlag)
			if !ok {
				return fmt.Errorf("unrecognized vendor %q", listVendorFlag)
			}
			builder.VendorFilter(vendor)
		}

		cliutil.PrintSearch("scanning for installed JVMs")
		installs := builder.Locate(context.Background())
		if len(installs) == 0 {
			if listJSON {
				fmt.Println("[]")
				return nil
			}
			cliutil.PrintWarning("no Java installations found")
			return nil
		}

		if listJSON {
			encoded, err := json.MarshalIndent(installs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		}

		for _, inst := range installs {
			kind := "jre"
			if inst.IsJdk {
				kind = "jdk"
			}
			vendor := inst.Vendor
			if inst.KnownVendor != nil {
				vendor = inst.KnownVendor.String()
			}
			fmt.Printf("%-6s %-12s %-10s %-8s %s\n", inst.LangVersion, vendor, inst.Architecture, kind, inst.JavaHome)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJdkOnly, "jdk-only", false, "only list installs that include a compiler")
	listCmd.Flags().BoolVar(&listIgnoreOpenJ9, "ignore-openj9", false, "exclude OpenJ9-based installs")
	listCmd.Flags().BoolVar(&listUseJavaw, "use-javaw", false, "probe with javaw instead of java on Windows")
	listCmd.Flags().StringVar(&listVersionFlag, "version", "", "only list installs matching this major version, e.g. 17")
	listCmd.Flags().StringVar(&listVendorFlag, "vendor", "", "only list installs from this vendor, e.g. Temurin")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print results as a JSON array instead of a table")
}
