package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/term7/texture"
)

// writeMips builds the texture for the BMP at path and writes each level as
// <name>-mip<k>.png under outDir
func writeMips(path, outDir string, colors, levels int) ([]string, error) {
	tex, err := texture.Load(path, colors, levels)
	if err != nil {
		return nil, err
	}
	defer tex.Release()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	files := make([]string, 0, tex.Count())
	for k := 0; k < tex.Count(); k++ {
		out := filepath.Join(outDir, fmt.Sprintf("%s-mip%d.png", name, k))
		if err := writePNG(out, tex.Level(k)); err != nil {
			return files, err
		}
		files = append(files, out)
	}
	return files, nil
}

func writePNG(path string, lvl *texture.Level) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, lvl.Image.Paletted()); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
