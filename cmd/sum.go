package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/sha1-go/internal/commands/sum"
)

var sumCmd = &cobra.Command{
	Use:   "sum [file...]",
	Short: "Print SHA-1 checksums",
	Long:  "Print SHA-1 (160-bit) checksums, one per file. With no file, or when file is -, read standard input.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}

		for _, path := range args {
			var (
				res sum.Result
				err error
			)
			if path == "-" {
				res, err = sum.Reader(os.Stdin, "-")
			} else {
				res, err = sum.File(path)
			}
			if err != nil {
				return err
			}
			fmt.Println(res.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)
}
