// ABOUTME: CLI command printing the pulse version.
// ABOUTME: Release builds stamp the version via -ldflags; dev builds read build info.
package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is overridden at build time with
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pulse version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pulse %s\n", resolveVersion())
	},
}

// resolveVersion prefers the stamped version, falling back to the module
// version recorded in build info (set for 'go install' builds).
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
