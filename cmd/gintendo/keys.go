package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/gintendo/controller"
)

// keymap pairs each standard controller button with the keyboard key
// that reports it on port 1.
var keymap = []struct {
	key    ebiten.Key
	button controller.Button
}{
	{ebiten.KeyA, controller.A},
	{ebiten.KeyB, controller.B},
	{ebiten.KeySpace, controller.Select},
	{ebiten.KeyEnter, controller.Start},
	{ebiten.KeyUp, controller.Up},
	{ebiten.KeyDown, controller.Down},
	{ebiten.KeyLeft, controller.Left},
	{ebiten.KeyRight, controller.Right},
}

// pollKeyboard samples the host keyboard and reports the live button
// mask to port, every ebiten Update tick.
func pollKeyboard(port *controller.Port) {
	var mask controller.Button
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			mask |= k.button
		}
	}
	port.SetButtons(mask)
}
