package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/spritesqueeze/internal/descriptor"
	"github.com/woozymasta/spritesqueeze/internal/pack"
)

// CmdPack packs a directory of sprites into one atlas PNG plus a
// descriptor file.
type CmdPack struct {
	Width          int     `short:"W" long:"width" description:"Bin width" default:"512" yaml:"width"`
	Height         int     `short:"H" long:"height" description:"Bin height" default:"512" yaml:"height"`
	AllowRotations boolArg `long:"allowRotations" description:"Allow 90-degree rotation during packing" default:"true" yaml:"allow_rotations"`
	Border         boolArg `long:"border" description:"Stamp a red border on each sprite" default:"false" yaml:"border"`

	OutputTexture string `long:"outputTexture" description:"Atlas PNG output path" yaml:"output_texture"`
	OutputInfo    string `long:"outputInfo" description:"Descriptor output path" yaml:"output_info"`

	InfoHeader string `long:"infoHeader" description:"Template mode: header" yaml:"info_header"`
	InfoBody   string `long:"infoBody" description:"Template mode: per-sprite body (enables template mode)" yaml:"info_body"`
	InfoFooter string `long:"infoFooter" description:"Template mode: footer" yaml:"info_footer"`
	InfoSplit  string `long:"infoSplit" description:"Template mode: inter-sprite separator" yaml:"info_split"`

	Verbose bool `long:"verbose" description:"Enable progress logging" yaml:"verbose"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Sprite directory" required:"yes" yaml:"input"`
	} `positional-args:"yes" required:"yes" yaml:"args"`
}

// Execute runs the pack command.
func (c *CmdPack) Execute(args []string) error {
	return runPack(c)
}

func runPack(opts *CmdPack) error {
	if opts.Width <= 0 {
		return fmt.Errorf("--width must be > 0, got %d", opts.Width)
	}
	if opts.Height <= 0 {
		return fmt.Errorf("--height must be > 0, got %d", opts.Height)
	}

	outputTexture := opts.OutputTexture
	if outputTexture == "" {
		outputTexture = filepath.Join(opts.Args.Input, "atlas.png")
	}
	outputInfo := opts.OutputInfo
	if outputInfo == "" {
		ext := ".xml"
		if opts.InfoBody != "" {
			ext = ".txt"
		}
		outputInfo = filepath.Join(opts.Args.Input, "atlas"+ext)
	}

	packOpts := pack.Options{
		Width:          opts.Width,
		Height:         opts.Height,
		AllowRotations: opts.AllowRotations.bool(),
		Border:         opts.Border.bool(),
		Verbose:        opts.Verbose,
		Logf: func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		},
	}

	result, err := pack.Run(opts.Args.Input, packOpts)
	if err != nil {
		return err
	}

	if err := result.Atlas.Save(outputTexture); err != nil {
		return fmt.Errorf("write atlas: %w", err)
	}

	infoFile, err := os.Create(outputInfo)
	if err != nil {
		return fmt.Errorf("create descriptor %q: %w", outputInfo, err)
	}
	defer func() { _ = infoFile.Close() }()

	tmpl := descriptor.Template{
		Header: opts.InfoHeader,
		Body:   opts.InfoBody,
		Footer: opts.InfoFooter,
		Split:  opts.InfoSplit,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	if err := descriptor.Write(infoFile, result, tmpl); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}

	fmt.Printf("Packed %d sprites from %s into %dx%d using %s (occupancy %.2f%%)\n",
		len(result.Sprites), opts.Args.Input, result.Width, result.Height, result.Rule, result.Occupancy*100)
	fmt.Printf("Outputs: %s, %s\n", outputTexture, outputInfo)

	return nil
}
