package commands

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/commonflags"
	encodeconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/encode"
	"github.com/nspcc-dev/pngme/pkg/message"
	"github.com/nspcc-dev/pngme/pkg/png"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(env *common.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <file> <chunk-type> <message> [output-file]",
		Short: "Hide message in PNG file",
		Long: `Append a chunk of the given type carrying the message to the end of PNG file.
Result is written to the output file if specified, source file is replaced otherwise.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return encodeFunc(cmd, env, args)
		},
	}

	cmd.Flags().Bool(commonflags.Compress, false, commonflags.CompressUsage)

	return cmd
}

func encodeFunc(cmd *cobra.Command, env *common.Env, args []string) error {
	src, typName, msg := args[0], args[1], args[2]

	dst := src
	if len(args) > 3 {
		dst = args[3]
	}

	typ, err := png.ParseChunkType(typName)
	if err != nil {
		return common.Errf("invalid chunk type argument: %w", err)
	}

	if !typ.IsValid() {
		env.Log.Warn("chunk type has reserved bit set, PNG decoders may reject the file",
			zap.Stringer("type", typ))
	}
	if typ.IsCritical() {
		env.Log.Warn("chunk type is critical, image viewers unaware of it will refuse to display the file",
			zap.Stringer("type", typ))
	}

	p, err := common.ReadPNG(src)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(commonflags.Compress) {
		v, _ := cmd.Flags().GetBool(commonflags.Compress)
		encodeconfig.SetCompress(env.Config, v)
	}

	codec := message.Codec{Compress: encodeconfig.Compress(env.Config)}

	err = codec.Init()
	if err != nil {
		return common.Errf("could not init message codec: %w", err)
	}
	defer codec.Close()

	c, err := codec.Chunk(typ, msg)
	if err != nil {
		return common.Errf("could not encode message: %w", err)
	}

	p.AppendChunk(c)

	err = common.WritePNG(dst, p)
	if err != nil {
		return err
	}

	env.Log.Debug("message encoded",
		zap.String("file", dst),
		zap.Stringer("type", typ),
		zap.Bool("compressed", codec.Compress),
		zap.Uint32("length", c.Length()),
		zap.Int("chunks", len(p.Chunks())),
	)

	return nil
}
