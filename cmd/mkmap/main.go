// Command mkmap prepares map assets: it converts ordinary images into the
// 8-bit bottom-up BMP form the renderer loads, and dumps the mipmap pyramid
// of a map as PNG files for inspection.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/bmp"

	"github.com/lixenwraith/term7/texture"
)

func main() {
	app := cli.NewApp()

	app.Name = "mkmap"
	app.Usage = "term7 map asset tool"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a PNG, JPEG, GIF or BMP image into a map bitmap",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Value: texture.MaxColors,
					Usage: "palette size",
				},
				&cli.IntFlag{
					Name:  "step",
					Value: sizeStep,
					Usage: "round both dimensions to a multiple of this",
				},
				&cli.StringFlag{
					Name:  "quantizer",
					Value: quantMedianCut,
					Usage: quantMedianCut + " or " + quantMedian,
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "Floyd-Steinberg dithering",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				logger := newLogger(c)

				err := convertFile(c.Args().Get(0), c.Args().Get(1), convertOptions{
					Colors:    c.Int("colors"),
					Step:      c.Int("step"),
					Quantizer: c.String("quantizer"),
					Dither:    c.Bool("dither"),
				}, logger)
				if err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "mips",
			Usage:     "Write every mipmap level of a map bitmap as PNG",
			ArgsUsage: "BITMAP",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "out",
					Value: ".",
					Usage: "output directory",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: texture.MaxColors,
					Usage: "palette size before building the levels",
				},
				&cli.IntFlag{
					Name:  "levels",
					Value: texture.MaxLevels,
					Usage: "number of levels",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				logger := newLogger(c)

				files, err := writeMips(c.Args().First(), c.String("out"), c.Int("colors"), c.Int("levels"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				for _, f := range files {
					logger.Println("wrote", f)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func convertFile(in, out string, o convertOptions, logger *log.Logger) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	logger.Printf("read %s: %s %dx%d", in, format, src.Bounds().Dx(), src.Bounds().Dy())

	dst, err := convert(src, o)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, dst); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", out, err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	logger.Printf("wrote %s: %dx%d, %d colors", out, dst.Rect.Dx(), dst.Rect.Dy(), o.Colors)
	return nil
}
