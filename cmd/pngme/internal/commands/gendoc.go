package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const (
	gendocTypeFlag = "type"

	gendocMarkdown = "md"
	gendocMan      = "man"
)

// newGendocCmd returns command generating documentation for the rootCmd tree.
func newGendocCmd(rootCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gendoc <dir>",
		Short: "Generate documentation for this command",
		Long: `Generate documentation for this command. Markdown (md) and man page (man)
formats are supported, one file per command is written to the directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			err := os.MkdirAll(dir, 0o755)
			if err != nil {
				return fmt.Errorf("could not create directory: %w", err)
			}

			typ, _ := cmd.Flags().GetString(gendocTypeFlag)

			switch typ {
			case gendocMarkdown:
				err = doc.GenMarkdownTree(rootCmd, dir)
			case gendocMan:
				err = doc.GenManTree(rootCmd, &doc.GenManHeader{
					Section: "1",
					Source:  rootCmd.Name(),
				}, dir)
			default:
				return fmt.Errorf("unsupported documentation type %q", typ)
			}

			if err != nil {
				return fmt.Errorf("could not generate documentation: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String(gendocTypeFlag, gendocMarkdown, "Type of the documentation: md or man")

	return cmd
}
