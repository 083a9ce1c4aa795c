// Command gensprites writes a directory of randomly sized PNG sprites for
// exercising the pack pipeline by hand: each sprite has a transparent
// margin of --padding pixels around an opaque labeled square of random
// size, so a real trim pass has work to do.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options are gensprites' CLI flags.
type Options struct {
	Args struct {
		OutputDir string `positional-arg-name:"output" description:"Output directory for generated PNG sprites" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	MinSize int `short:"m" long:"min-size" description:"Minimum opaque content size" default:"16"`
	MaxSize int `short:"M" long:"max-size" description:"Maximum opaque content size" default:"96"`
	Count   int `short:"c" long:"count" description:"Number of sprites to generate" default:"10"`
	Padding int `short:"p" long:"padding" description:"Transparent margin around the opaque content" default:"8"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "gensprites"
	parser.Usage = "[OPTIONS] <output>"

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *Options) error {
	if opts.MinSize <= 0 || opts.MaxSize <= 0 {
		return fmt.Errorf("min-size and max-size must be positive")
	}
	if opts.MinSize > opts.MaxSize {
		return fmt.Errorf("min-size must be <= max-size")
	}
	if opts.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	if opts.Padding < 0 {
		return fmt.Errorf("padding must be >= 0")
	}

	if err := os.MkdirAll(opts.Args.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	//nolint:gosec // non-crypto randomness is fine for generated test fixtures.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < opts.Count; i++ {
		content := opts.MinSize + rng.Intn(opts.MaxSize-opts.MinSize+1)
		if err := generateSprite(opts.Args.OutputDir, i, content, opts.Padding, rng); err != nil {
			return fmt.Errorf("failed to generate sprite %d: %w", i, err)
		}
	}

	fmt.Printf("Generated %d sprites in %s\n", opts.Count, opts.Args.OutputDir)
	return nil
}

// generateSprite writes one PNG with a fully transparent border of width
// padding surrounding an opaque content×content square.
func generateSprite(outputDir string, index, content, padding int, rng *rand.Rand) error {
	full := content + 2*padding
	im := image.NewNRGBA(image.Rect(0, 0, full, full))

	fill := color.NRGBA{R: randByte(rng), G: randByte(rng), B: randByte(rng), A: 255}
	for y := padding; y < padding+content; y++ {
		for x := padding; x < padding+content; x++ {
			im.SetNRGBA(x, y, fill)
		}
	}

	labelColor := color.NRGBA{R: 0, G: 0, B: 0, A: 200}
	drawCenteredLabel(im, fmt.Sprintf("%d", index+1), float64(content)*0.6, labelColor, padding, content)

	name := filepath.Join(outputDir, fmt.Sprintf("sprite_%03d_%dx%d.png", index, full, full))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return png.Encode(f, im)
}

func drawCenteredLabel(im *image.NRGBA, label string, size float64, c color.NRGBA, offset, content int) {
	if size < 6 {
		return
	}
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return
	}
	defer func() { _ = face.Close() }()

	bounds, _ := font.BoundString(face, label)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := offset + (content-textW)/2 - bounds.Min.X.Ceil()
	y := offset + (content-textH)/2 - bounds.Min.Y.Ceil()

	drawer := &font.Drawer{
		Dst:  im,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(label)
}

func randByte(rng *rand.Rand) uint8 {
	//nolint:gosec // Intn(256) is always within uint8.
	return uint8(rng.Intn(256))
}
