package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/version"
)

// VersionCmd shows build information for the ontos binary.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ontos version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(info)
		}
		fmt.Println(info.String())
		fmt.Printf("Platform: %s\n", info.Platform)
		fmt.Printf("Go: %s\n", info.GoVersion)
		return nil
	},
}
