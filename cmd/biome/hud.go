package main

import (
	"fmt"
	"time"

	"github.com/taigrr/biome/pkg/render"
	"github.com/taigrr/biome/pkg/scene"
)

// HUD renders an overlay with render stats and controls.
type HUD struct {
	objectCount int
	fps         float64
	fpsFrames   int
	fpsTime     time.Time
	flashMsg    string
	flashUntil  time.Time
}

// NewHUD creates a new HUD.
func NewHUD(objectCount int) *HUD {
	return &HUD{
		objectCount: objectCount,
		fpsTime:     time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Flash shows a transient message on the bottom row.
func (h *HUD) Flash(msg string) {
	h.flashMsg = msg
	h.flashUntil = time.Now().Add(3 * time.Second)
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int, cycle *scene.DayCycle, camera *render.Camera, show bool) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	// Helper to position cursor
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !show {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: phase
	phase := "☀ Day"
	if cycle.IsNight() {
		phase = "☾ Night"
	}
	if cycle.Frozen {
		phase += " (frozen)"
	}
	phaseCol := max((width-len(phase)-2)/2, 1)
	fmt.Print(moveTo(1, phaseCol) + bold + bgBlack + fgWhite + " " + phase + " " + reset)

	// Top right: scene size
	objStr := fmt.Sprintf("%s%s%s %d cubes %s", bgBlack, fgCyan, bold, h.objectCount, reset)
	objCol := max(width-14, 1)
	fmt.Print(moveTo(1, objCol) + objStr)

	// Bottom: flash message or controls hint
	if h.flashMsg != "" && time.Now().Before(h.flashUntil) {
		fmt.Printf("%s%s%s%s %s %s", moveTo(height, 1), bgBlack, bold, fgYellow, h.flashMsg, reset)
		return
	}

	hint := fmt.Sprintf("%s%s drag/wasd orbit  z/x zoom (%.0fm)  space freeze  n day/night  p snapshot %s",
		bgBlack, fgWhite, camera.Distance(), reset)
	fmt.Print(moveTo(height, 1) + hint)

	quitHint := fmt.Sprintf("%s%s%s esc quit %s", bgBlack, dim, fgYellow, reset)
	quitCol := max(width-10, 1)
	fmt.Print(moveTo(height, quitCol) + quitHint)
}
