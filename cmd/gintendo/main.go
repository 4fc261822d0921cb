// Command gintendo plays an iNES ROM image, presenting the emulated
// picture through ebiten and feeding it keyboard input on controller
// port 1.
package main

import (
	"context"
	"flag"
	"image/color"
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/gintendo/nes"
	"github.com/nescore/gintendo/ppu"
)

var romPath = flag.String("rom", "", "Path to the iNES ROM to run.")

// game adapts a *nes.System to the ebiten.Game interface. The system
// runs freely in its own goroutine; Update only samples input and Draw
// only copies whatever frame is currently in the buffer, so a slow or
// stalled display never throttles emulation.
type game struct {
	system *nes.System
}

func (g *game) Update() error {
	pollKeyboard(g.system.Port1())
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

func (g *game) Draw(screen *ebiten.Image) {
	buf := g.system.Buffer()
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			rgb := ppu.SystemPalette[buf[y*ppu.ScreenWidth+x]&0x3F]
			screen.Set(x, y, color.RGBA{rgb.R, rgb.G, rgb.B, 0xFF})
		}
	}
}

func main() {
	flag.Parse()

	data, err := os.ReadFile(*romPath)
	if err != nil {
		glog.Fatalf("gintendo: reading ROM: %v", err)
	}

	system := nes.New()
	if err := system.InsertCartridge(data); err != nil {
		glog.Fatalf("gintendo: loading cartridge: %v", err)
	}
	system.PowerOn()
	system.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runEmulation(ctx, system)

	ebiten.SetWindowSize(ppu.ScreenWidth*2, ppu.ScreenHeight*2)
	ebiten.SetWindowTitle("gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{system: system}); err != nil {
		glog.Fatalf("gintendo: %v", err)
	}
}

// runEmulation free-runs the system one frame at a time until ctx is
// cancelled, decoupled from ebiten's own Update/Draw cadence.
func runEmulation(ctx context.Context, system *nes.System) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			system.RunFrame()
		}
	}
}
