package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/sha1-go/errors"
	"github.com/unkn0wn-root/sha1-go/objectid"
)

var objectType string

var objectCmd = &cobra.Command{
	Use:   "object <file>",
	Short: "Compute a git-style object identifier",
	Long:  `Compute the SHA-1 identifier git would assign to the file contents wrapped as an object ("type size\0content").`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.NewToolError("object", args[0], err)
		}

		fmt.Println(objectid.ComputeObject(objectType, data))
		return nil
	},
}

func init() {
	objectCmd.Flags().StringVarP(&objectType, "type", "t", "blob", "object type (blob, tree, commit, tag)")
	rootCmd.AddCommand(objectCmd)
}
