// biome - Terminal voxel ray tracer
// An interactive cherry-blossom biome rendered by ray tracing, presented
// with half-block terminal cells.
//
// Controls:
//
//	Mouse drag  - Orbit the camera (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Z/X         - Zoom out/in
//	Space       - Freeze/resume the day cycle
//	N           - Jump between day and night
//	P           - Save a PNG snapshot
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/biome/pkg/math3d"
	"github.com/taigrr/biome/pkg/render"
	"github.com/taigrr/biome/pkg/scene"
)

var (
	targetFPS   = flag.Int("fps", 30, "Target FPS")
	texturesDir = flag.String("textures", "", "Directory with block texture images (optional)")
	startNight  = flag.Bool("night", false, "Start the cycle at night")
	freeze      = flag.Bool("freeze", false, "Freeze the day cycle")
	cycleSpeed  = flag.Float64("cycle-speed", 0.3, "Day cycle speed (radians of sun arc per second)")
	exportPath  = flag.String("export", "", "Export the scene as glTF (.gltf/.glb) and exit")
	snapshotDir = flag.String("snapshots", ".", "Directory for PNG snapshots")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "biome - Terminal voxel ray tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: biome [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Z/X         - Zoom out/in\n")
		fmt.Fprintf(os.Stderr, "  Space       - Freeze/resume day cycle\n")
		fmt.Fprintf(os.Stderr, "  N           - Jump day/night\n")
		fmt.Fprintf(os.Stderr, "  P           - Save PNG snapshot\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// OrbitAxis tracks one camera control velocity with spring decay.
type OrbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewOrbitAxis creates an axis with a critically damped spring.
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays the velocity toward 0 using the spring.
func (a *OrbitAxis) Update() {
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// OrbitState holds the camera control velocities.
type OrbitState struct {
	Yaw, Pitch, Zoom OrbitAxis
}

func NewOrbitState(fps int) *OrbitState {
	return &OrbitState{
		Yaw:   NewOrbitAxis(fps),
		Pitch: NewOrbitAxis(fps),
		Zoom:  NewOrbitAxis(fps),
	}
}

func (o *OrbitState) Update() {
	o.Yaw.Update()
	o.Pitch.Update()
	o.Zoom.Update()
}

func (o *OrbitState) ApplyImpulse(yaw, pitch, zoom float64) {
	o.Yaw.Velocity += yaw
	o.Pitch.Velocity += pitch
	o.Zoom.Velocity += zoom
}

// inputSnapshot is one frame's worth of accumulated input.
type inputSnapshot struct {
	yaw, pitch    float64
	zoom          float64
	toggleNight   bool
	toggleFreeze  bool
	toggleHUD     bool
	snapshot      bool
	resized       bool
	width, height int
}

// inputState collects event-driven changes. The event goroutine writes it
// and the frame loop drains it at the top of each frame, so all scene and
// camera mutation happens between frames.
type inputState struct {
	mu sync.Mutex
	inputSnapshot
}

func (in *inputState) impulse(yaw, pitch, zoom float64) {
	in.mu.Lock()
	in.yaw += yaw
	in.pitch += pitch
	in.zoom += zoom
	in.mu.Unlock()
}

// drain returns the accumulated input and resets it.
func (in *inputState) drain() inputSnapshot {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.inputSnapshot
	in.inputSnapshot = inputSnapshot{}
	return out
}

func run() error {
	blocks := scene.LoadBlocks(*texturesDir)
	biome := scene.Biome(blocks)

	if *exportPath != "" {
		if err := scene.ExportGLTF(biome, *exportPath); err != nil {
			return fmt.Errorf("export scene: %w", err)
		}
		fmt.Printf("Exported %d cubes to %s\n", len(biome.Objects), *exportPath)
		return nil
	}

	camera, err := render.NewCamera(
		math3d.V3(0, 5, 35),
		math3d.Zero3(),
		math3d.Up(),
	)
	if err != nil {
		return fmt.Errorf("create camera: %w", err)
	}

	cycle := scene.NewDayCycle(*startNight)
	cycle.Frozen = *freeze

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	orbit := NewOrbitState(*targetFPS)
	hud := NewHUD(len(biome.Objects))
	showHUD := true

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	const (
		orbitSpeed = math.Pi / 10
		zoomSpeed  = 1.0
	)

	input := &inputState{}

	// Event handler
	go func() {
		var mouseDown bool
		var lastMouseX, lastMouseY int

		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				input.mu.Lock()
				input.resized = true
				input.width, input.height = ev.Width, ev.Height
				input.mu.Unlock()

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					input.impulse(orbitSpeed, 0, 0)
				case ev.MatchString("d", "right"):
					input.impulse(-orbitSpeed, 0, 0)
				case ev.MatchString("w", "up"):
					input.impulse(0, -orbitSpeed, 0)
				case ev.MatchString("s", "down"):
					input.impulse(0, orbitSpeed, 0)
				case ev.MatchString("x", "+", "="):
					input.impulse(0, 0, zoomSpeed)
				case ev.MatchString("z", "-", "_"):
					input.impulse(0, 0, -zoomSpeed)
				case ev.MatchString("space"):
					input.mu.Lock()
					input.toggleFreeze = true
					input.mu.Unlock()
				case ev.MatchString("n"):
					input.mu.Lock()
					input.toggleNight = true
					input.mu.Unlock()
				case ev.MatchString("p"):
					input.mu.Lock()
					input.snapshot = true
					input.mu.Unlock()
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					input.mu.Lock()
					input.toggleHUD = true
					input.mu.Unlock()
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					input.impulse(float64(-dx)*0.02, float64(dy)*0.02, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					input.impulse(0, 0, zoomSpeed)
				case uv.MouseWheelDown:
					input.impulse(0, 0, -zoomSpeed)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Fold queued input into camera and cycle before building the frame.
		in := input.drain()
		if in.resized {
			width, height = in.width, in.height
			term.Erase()
			term.Resize(width, height)
			termRenderer = render.NewTerminalRenderer(term, width, height)
			fbWidth, fbHeight = termRenderer.FramebufferSize()
			fb = render.NewFramebuffer(fbWidth, fbHeight)
		}
		if in.toggleFreeze {
			cycle.Frozen = !cycle.Frozen
		}
		if in.toggleNight {
			cycle.Toggle()
		}
		if in.toggleHUD {
			showHUD = !showHUD
		}

		orbit.ApplyImpulse(in.yaw, in.pitch, in.zoom)
		if orbit.Yaw.Velocity != 0 || orbit.Pitch.Velocity != 0 {
			camera.Orbit(orbit.Yaw.Velocity, orbit.Pitch.Velocity)
		}
		if orbit.Zoom.Velocity != 0 {
			camera.Zoom(orbit.Zoom.Velocity)
		}
		orbit.Update()

		cycle.Advance(dt * *cycleSpeed)

		// Render
		frame := &render.RenderContext{
			Camera:  camera,
			Objects: biome.Objects,
			Skybox:  biome.Skybox,
			Lights:  cycle.Lights(),
			Night:   cycle.IsNight(),
		}
		render.Render(fb, frame)

		if in.snapshot {
			name := filepath.Join(*snapshotDir, time.Now().Format("biome-20060102-150405.png"))
			if err := fb.SavePNG(name); err == nil {
				hud.Flash(fmt.Sprintf("saved %s", name))
			} else {
				hud.Flash(fmt.Sprintf("snapshot failed: %v", err))
			}
		}

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, cycle, camera, showHUD)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
