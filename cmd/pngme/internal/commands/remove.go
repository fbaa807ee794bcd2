package commands

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRemoveCmd(env *common.Env) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <file> <chunk-type>",
		Short:             "Remove hidden message from PNG file",
		Long:              `Remove the first chunk of the given type and write the file back in place.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeFileChunkTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeFunc(cmd, env, args)
		},
	}
}

func removeFunc(cmd *cobra.Command, env *common.Env, args []string) error {
	src, typName := args[0], args[1]

	p, err := common.ReadPNG(src)
	if err != nil {
		return err
	}

	c, err := p.RemoveChunkByType(typName)
	if err != nil {
		return common.Errf("could not remove chunk: %w", err)
	}

	err = common.WritePNG(src, p)
	if err != nil {
		return err
	}

	env.Log.Debug("chunk removed",
		zap.String("file", src),
		zap.Stringer("type", c.Type()),
		zap.Int("chunks", len(p.Chunks())),
	)

	cmd.Printf("Removed chunk %s\n", c)

	return nil
}
