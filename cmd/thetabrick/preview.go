package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// halfBlock is one terminal cell: the upper pixel is drawn as the
// foreground of '▀' and the lower one as its background.
type halfBlock struct {
	top, bottom color.RGBA
}

// halfBlocks scales img to fit cols×rows terminal cells, keeping its aspect
// ratio with two pixels per cell vertically.
func halfBlocks(img image.Image, cols, rows int) [][]halfBlock {
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return nil
	}
	w, h := cols, rows*2
	if b.Dx()*h > b.Dy()*w {
		h = max(2, w*b.Dy()/b.Dx())
	} else {
		w = max(1, h*b.Dx()/b.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	out := make([][]halfBlock, h/2)
	for y := range out {
		out[y] = make([]halfBlock, w)
		for x := range out[y] {
			out[y][x] = halfBlock{top: dst.RGBAAt(x, 2*y), bottom: dst.RGBAAt(x, 2*y+1)}
		}
	}
	return out
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func paint(screen tcell.Screen, img image.Image) {
	screen.Clear()
	cols, rows := screen.Size()
	for y, row := range halfBlocks(img, cols, rows) {
		for x, cell := range row {
			style := tcell.StyleDefault.Foreground(rgb(cell.top)).Background(rgb(cell.bottom))
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
	screen.Show()
}

// preview shows img in the terminal until Esc, Ctrl-C or q.
func preview(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	paint(screen, img)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			paint(screen, img)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			return nil
		}
	}
}
