package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/soniakeys/quant/median"

	"github.com/lixenwraith/term7/bitmap"
	"github.com/lixenwraith/term7/texture"
)

// Quantizer names accepted by --quantizer
const (
	quantMedianCut = "mediancut"
	quantMedian    = "median"
)

// sizeStep makes every dimension divisible by all eight mip ratios
const sizeStep = 1 << (texture.MaxLevels - 1)

type convertOptions struct {
	Colors    int
	Step      int
	Quantizer string
	Dither    bool
}

// fitSize rounds w and h to the nearest positive multiple of step
func fitSize(w, h, step int) (int, int) {
	round := func(n int) int {
		r := (n + step/2) / step * step
		if r < step {
			return step
		}
		return r
	}
	return round(w), round(h)
}

func newQuantizer(name string, colors int) (draw.Quantizer, error) {
	switch name {
	case "", quantMedianCut:
		return quantize.MedianCutQuantizer{}, nil
	case quantMedian:
		return median.Quantizer(colors), nil
	}
	return nil, fmt.Errorf("unknown quantizer %q (want %s or %s)", name, quantMedianCut, quantMedian)
}

// convert resizes src to mip-friendly dimensions and reduces it to an indexed
// image whose palette is padded to the full 256 entries
func convert(src image.Image, o convertOptions) (*image.Paletted, error) {
	if o.Step <= 0 {
		o.Step = sizeStep
	}
	colors := texture.ClampColors(o.Colors)

	b := src.Bounds()
	if b.Empty() {
		return nil, errors.New("empty source image")
	}
	w, h := fitSize(b.Dx(), b.Dy(), o.Step)

	g := gift.New(gift.Resize(w, h, gift.LanczosResampling))
	rgba := image.NewRGBA(g.Bounds(b))
	g.Draw(rgba, src)

	q, err := newQuantizer(o.Quantizer, colors)
	if err != nil {
		return nil, err
	}
	pal := q.Quantize(make(color.Palette, 0, colors), rgba)
	if len(pal) == 0 {
		return nil, errors.New("quantizer returned an empty palette")
	}
	if len(pal) > colors {
		pal = pal[:colors]
	}

	dst := image.NewPaletted(rgba.Bounds(), pal)
	if o.Dither {
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), rgba, rgba.Bounds().Min)
	} else {
		draw.Draw(dst, dst.Bounds(), rgba, rgba.Bounds().Min, draw.Src)
	}

	full := make(color.Palette, bitmap.PaletteEntries)
	n := copy(full, pal)
	for i := n; i < len(full); i++ {
		full[i] = color.RGBA{A: 0xff}
	}
	dst.Palette = full
	return dst, nil
}
