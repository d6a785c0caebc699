package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/sha1-go/errors"
	"github.com/unkn0wn-root/sha1-go/internal/commands/sum"
	"github.com/unkn0wn-root/sha1-go/pkg/display"
)

var checkCmd = &cobra.Command{
	Use:   "check <sumfile>",
	Short: "Verify SHA-1 checksums",
	Long:  "Read sha1sum-style lines from the given file and verify that each named file still matches its recorded digest.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := sum.Check(args[0])
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			switch {
			case r.OK:
				fmt.Printf("%s: %s\n", r.Path, display.Success("OK"))
			case stderrors.Is(r.Err, errors.ErrChecksumMismatch):
				failed++
				fmt.Printf("%s: %s\n", r.Path, display.Error("FAILED"))
			default:
				failed++
				fmt.Printf("%s: %s (%v)\n", r.Path, display.Error("FAILED"), r.Err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d computed checksums did NOT match", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
