package runner

import (
	"fmt"

	"github.com/vovakirdan/voicerun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '▒'
)

// RenderFrame draws f into dst, scaling the viewport to the screen size.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || f.ViewportWidth == 0 || f.ViewportHeight == 0 {
		return
	}

	unitsX := float64(f.ViewportWidth) / float64(dst.Width())
	unitsY := float64(f.ViewportHeight) / float64(dst.Height())

	// Ground strip
	ground := core.NewRect(0, f.GroundY, f.ViewportWidth, f.ViewportHeight-f.GroundY).Scale(unitsX, unitsY)
	dst.FillRect(ground, GroundChar, core.ColorDarkGray)

	for _, o := range f.Obstacles {
		dst.FillRect(f.ToViewport(o).Scale(unitsX, unitsY), ObstacleChar, core.ColorGray)
	}
	dst.FillRect(f.ToViewport(f.Player).Scale(unitsX, unitsY), PlayerChar, core.ColorBlue)

	drawHUD(dst, f)

	if f.GameOver() {
		drawCenteredMessage(dst,
			"Game Over!",
			fmt.Sprintf("Final score: %d", f.Score),
			"Press R to restart or Q to quit",
		)
	}
}

func drawHUD(dst *core.Screen, f Frame) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Time: %ds", int(f.Elapsed.Seconds())), core.ColorWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Score: %d", f.Score), core.ColorWhite)

	status := "running"
	if !f.Running {
		status = "stopped"
	}
	if f.LastCommand != 0 {
		status = fmt.Sprintf("%s | last: %s", status, f.LastCommand)
	}
	dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i*2, l, core.ColorWhite)
	}
}
