package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/max99x/drawtime/pkg/parse"
)

var checkCmd = &cobra.Command{
	Use:   "check <source_file>",
	Short: "Validate a timing diagram description",
	Long: `Parse and validate a timing diagram description without rendering.

Exits non-zero with a position-annotated message on the first error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	d, err := parse.ParseFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: OK (%d signals)\n", args[0], len(d.Signals))
	return nil
}
