// Command okpicker-demo renders one pass of the open picker to a PNG using
// the software painter. It scripts a click on the trigger button, then a
// drag on the chroma/lightness area, and writes the resulting frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"

	"github.com/fu5ha/okpicker"
)

// scriptedInput replays a fixed interaction: a click at Click on the first
// pass, then a drag at Drag on every later pass.
type scriptedInput struct {
	pass  int
	click okpicker.Pos
	drag  okpicker.Pos
}

func (in *scriptedInput) Activated(r okpicker.Rect) bool {
	return in.pass == 0 && r.Contains(in.click)
}

func (in *scriptedInput) PointerPos(r okpicker.Rect) (okpicker.Pos, bool) {
	if in.pass > 0 && r.Contains(in.drag) {
		return in.drag, true
	}
	return okpicker.Pos{}, false
}

func (in *scriptedInput) EscapePressed() bool { return false }

func (in *scriptedInput) ActivatedOutside(r okpicker.Rect) bool { return false }

type stdoutClipboard struct{}

func (stdoutClipboard) SetText(text string) {
	fmt.Println("clipboard:", text)
}

func main() {
	out := flag.String("o", "picker.png", "output PNG path")
	scale := flag.Int("scale", 2, "integer upscale factor for the output")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		okpicker.SetLogger(slog.Default())
	}

	img := image.NewRGBA(image.Rect(0, 0, 360, 480))
	painter := okpicker.NewSoftwarePainter(img)
	cache := okpicker.NewRoundTripCache(0)

	picker := okpicker.NewPicker(okpicker.RectXYWH(16, 16, 48, 24))
	reg := picker.Regions()

	input := &scriptedInput{
		click: okpicker.P(20, 20),
		drag:  reg.Area.Center(),
	}
	host := &okpicker.Host{
		Painter:   painter,
		Input:     input,
		Clipboard: stdoutClipboard{},
		Cache:     cache,
	}

	// Start from a named CSS color, premultiplied (it is opaque, so the
	// channels carry straight through).
	c := colornames.Crimson
	display := okpicker.DisplayRGBA{R: c.R, G: c.G, B: c.B, A: c.A}

	// Pass 0 opens the popup; pass 1 drags the 2-D slider and renders the
	// frame we keep.
	picker.EditDisplay(host, &display)
	input.pass++
	changed := picker.EditDisplay(host, &display)
	fmt.Printf("final color: (%d, %d, %d, %d), changed: %v\n",
		display.R, display.G, display.B, display.A, changed)

	frame := img
	if *scale > 1 {
		b := img.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()**scale, b.Dy()**scale))
		xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, b, xdraw.Src, nil)
		frame = big
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create:", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, frame); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}
