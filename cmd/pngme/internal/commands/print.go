package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/commonflags"
	printconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/print"
	"github.com/nspcc-dev/pngme/pkg/png"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

type headerInfo struct {
	Width       uint32 `json:"width" yaml:"width"`
	Height      uint32 `json:"height" yaml:"height"`
	BitDepth    uint8  `json:"bit_depth" yaml:"bit_depth"`
	ColorType   string `json:"color_type" yaml:"color_type"`
	Compression uint8  `json:"compression" yaml:"compression"`
	Filter      uint8  `json:"filter" yaml:"filter"`
	Interlace   uint8  `json:"interlace" yaml:"interlace"`
}

type chunkInfo struct {
	Index      int    `json:"index" yaml:"index"`
	Type       string `json:"type" yaml:"type"`
	Length     uint32 `json:"length" yaml:"length"`
	CRC        string `json:"crc" yaml:"crc"`
	Critical   bool   `json:"critical" yaml:"critical"`
	Public     bool   `json:"public" yaml:"public"`
	SafeToCopy bool   `json:"safe_to_copy" yaml:"safe_to_copy"`
	Valid      bool   `json:"valid" yaml:"valid"`
}

type fileInfo struct {
	Header *headerInfo `json:"header,omitempty" yaml:"header,omitempty"`
	Chunks []chunkInfo `json:"chunks" yaml:"chunks"`
}

func newPrintCmd(env *common.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Print chunks of PNG file",
		Long: `Print all chunks of PNG file in order with their properties. Image header is
printed too if the file starts with IHDR chunk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFunc(cmd, env, args)
		},
	}

	cmd.Flags().StringP(commonflags.Format, commonflags.FormatShorthand, "", commonflags.FormatUsage)

	return cmd
}

func printFunc(cmd *cobra.Command, env *common.Env, args []string) error {
	src := args[0]

	if cmd.Flags().Changed(commonflags.Format) {
		v, _ := cmd.Flags().GetString(commonflags.Format)
		printconfig.SetFormat(env.Config, v)
	}

	format := printconfig.Format(env.Config)

	w := cmd.OutOrStdout()
	switch format {
	case "":
		format = autoFormat(w)
	case formatTable, formatYAML, formatJSON:
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	p, err := common.ReadPNG(src)
	if err != nil {
		return err
	}

	info := collectInfo(env.Log, p)

	env.Log.Debug("printing chunks",
		zap.String("file", src),
		zap.Int("chunks", len(info.Chunks)),
		zap.String("format", format),
	)

	switch format {
	case formatTable:
		printTable(w, info)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("could not encode YAML: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("could not encode JSON: %w", err)
		}
	}

	return nil
}

// autoFormat selects table for terminals and machine-readable format otherwise.
func autoFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return formatTable
	}

	return formatYAML
}

func collectInfo(l *zap.Logger, p *png.PNG) fileInfo {
	chunks := p.Chunks()

	res := fileInfo{
		Chunks: make([]chunkInfo, len(chunks)),
	}

	for i, c := range chunks {
		typ := c.Type()

		res.Chunks[i] = chunkInfo{
			Index:      i,
			Type:       typ.String(),
			Length:     c.Length(),
			CRC:        fmt.Sprintf("%08x", c.CRC()),
			Critical:   typ.IsCritical(),
			Public:     typ.IsPublic(),
			SafeToCopy: typ.IsSafeToCopy(),
			Valid:      typ.IsValid(),
		}
	}

	if len(chunks) == 0 || chunks[0].Type().String() != png.HeaderChunkType {
		return res
	}

	hdr, err := png.ParseHeader(chunks[0])
	if err != nil {
		l.Warn("invalid image header", zap.Error(err))
		return res
	}

	res.Header = &headerInfo{
		Width:       hdr.Width,
		Height:      hdr.Height,
		BitDepth:    hdr.BitDepth,
		ColorType:   hdr.ColorType.String(),
		Compression: hdr.CompressionMethod,
		Filter:      hdr.FilterMethod,
		Interlace:   hdr.InterlaceMethod,
	}

	return res
}

func printTable(w io.Writer, info fileInfo) {
	if h := info.Header; h != nil {
		fmt.Fprintf(w, "Image: %dx%d, %d-bit %s, interlace %d\n",
			h.Width, h.Height, h.BitDepth, h.ColorType, h.Interlace)
	}

	out := tablewriter.NewWriter(w)
	out.SetHeader([]string{"#", "Type", "Length", "CRC", "Critical", "Public", "Safe to copy", "Valid"})
	out.SetAutoWrapText(false)

	for _, c := range info.Chunks {
		out.Append([]string{
			strconv.Itoa(c.Index),
			c.Type,
			strconv.FormatUint(uint64(c.Length), 10),
			c.CRC,
			boolToString(c.Critical),
			boolToString(c.Public),
			boolToString(c.SafeToCopy),
			boolToString(c.Valid),
		})
	}

	out.Render()
}

func boolToString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
