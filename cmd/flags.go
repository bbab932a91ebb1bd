package cmd

import (
	"fmt"
	"os"

	genes "github.com/gnames/genes/pkg"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", genes.Version, genes.Build)
		os.Exit(0)
	}
}
