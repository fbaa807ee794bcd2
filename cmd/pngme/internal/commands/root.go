package commands

import (
	"os"

	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/commonflags"
	"github.com/nspcc-dev/pngme/misc"
	"github.com/spf13/cobra"
)

// NewRoot returns root pngme command with all subcommands attached.
func NewRoot() *cobra.Command {
	env := new(common.Env)

	cmd := &cobra.Command{
		Use:   "pngme",
		Short: "Hide messages in PNG files",
		Long: `pngme hides text messages in PNG files as separate chunks. The image itself
stays untouched and viewable, the message can be read back or removed later.

Exit codes: 1 on I/O and configuration failures, 2 on malformed PNG files or
chunk data, 3 when the chunk to remove is missing.`,
		Args:          cobra.NoArgs,
		RunE:          entryPoint,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString(commonflags.Config)
			verbose, _ := cmd.Flags().GetBool(commonflags.Verbose)

			return env.Init(cfgPath, verbose, cmd.ErrOrStderr())
		},
	}

	// use stdout as default output for cmd.Print()
	cmd.SetOut(os.Stdout)

	cmd.CompletionOptions.DisableDefaultCmd = true

	commonflags.InitRoot(cmd.PersistentFlags())
	cmd.Flags().Bool(commonflags.Version, false, commonflags.VersionUsage)

	cmd.AddCommand(
		newEncodeCmd(env),
		newDecodeCmd(env),
		newRemoveCmd(env),
		newPrintCmd(env),
		newGendocCmd(cmd),
		newCompletionCmd(),
	)

	return cmd
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool(commonflags.Version)
	if printVersion {
		cmd.Print(misc.BuildInfo("pngme"))

		return nil
	}

	return cmd.Usage()
}
