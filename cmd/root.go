package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/sha1-go/pkg/display"
)

var rootCmd = &cobra.Command{
	Use:   "sha1-go",
	Short: "Streaming SHA-1 checksums",
	Long: `sha1-go computes SHA-1 digests of files and streams.
It prints and verifies sha1sum-style checksum files and can compute
git-style object identifiers.`,
	Version: "1.0.0",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", display.Error("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
