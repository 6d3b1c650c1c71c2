package cliutil

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mbndr/figlet4go"
)

// PrintBanner renders the CLI's startup figlet banner, falling back to a
// plain colored line if the renderer can't produce output (a missing or
// unrecognized font, for instance).
func PrintBanner() {
	render := figlet4go.NewAsciiRender()
	options := figlet4go.NewRenderOptions()
	options.FontName = "standard"

	output, err := render.RenderOpts("jvmutils", options)
	if err != nil || output == "" {
		color.New(color.FgHiCyan).Println("jvmutils - JVM discovery and provisioning")
		return
	}
	color.New(color.FgHiBlue).Print(output)
	fmt.Println(SprintSearch("discover, verify, and provision JVMs") + "  " + color.New(color.FgHiGreen).Sprint("[cache-aware]"))
}
