package commands

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/nspcc-dev/pngme/pkg/message"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCmd(env *common.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Read hidden message from PNG file",
		Long: `Print message carried by the first chunk of the given type. Compressed messages
are decompressed automatically.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeFileChunkTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return decodeFunc(cmd, env, args)
		},
	}
}

func decodeFunc(cmd *cobra.Command, env *common.Env, args []string) error {
	src, typName := args[0], args[1]

	p, err := common.ReadPNG(src)
	if err != nil {
		return err
	}

	c, ok := p.ChunkByType(typName)
	if !ok {
		env.Log.Debug("chunk not found", zap.String("file", src), zap.String("type", typName))
		cmd.Printf("No chunk found with type %s\n", typName)
		return nil
	}

	var codec message.Codec

	err = codec.Init()
	if err != nil {
		return common.Errf("could not init message codec: %w", err)
	}
	defer codec.Close()

	msg, err := codec.Decode(c)
	if err != nil {
		return common.Errf("could not decode message: %w", err)
	}

	env.Log.Debug("message decoded",
		zap.String("file", src),
		zap.Stringer("type", c.Type()),
		zap.Bool("compressed", message.IsCompressed(c.Data())),
	)

	cmd.Println(msg)

	return nil
}
