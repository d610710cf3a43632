package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the uitext version and build time.",
		Usage: "uitext version",
		Run: func(args []string) error {
			fmt.Fprintf(stdout, "uitext version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
