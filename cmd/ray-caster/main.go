package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-caster/audio"
	"github.com/lixenwraith/ray-caster/engine"
	"github.com/lixenwraith/ray-caster/input"
	"github.com/lixenwraith/ray-caster/logging"
	"github.com/lixenwraith/ray-caster/parameter"
	"github.com/lixenwraith/ray-caster/render"
	"github.com/lixenwraith/ray-caster/world"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML settings file")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/ray-caster.log")
	muteFlag     = flag.Bool("mute", false, "Disable the wall bump sound")
	snapshotFlag = flag.Bool("snapshot", false, "Render one frame to stdout and exit")
	fpsFlag      = flag.Bool("fps", false, "Append ray and bump counters to the status line")
	colorFlag    = flag.String("color", "auto", "Color mode: auto, truecolor, 256, mono")
	mazeFlag     = flag.Bool("maze", false, "Play in a generated maze instead of the configured map")
	seedFlag     = flag.Int64("seed", 0, "Maze seed (0 = time-based)")
	braidFlag    = flag.Float64("braid", 0.3, "Maze braiding: 0 = perfect maze, 1 = no dead ends")
)

func main() {
	flag.Parse()

	logFile := logging.Setup(*debugFlag, "ray-caster")
	if logFile != nil {
		defer logFile.Close()
	}

	settings, keys, err := loadSettings(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		log.Printf("config: %v", err)
		os.Exit(2)
	}
	if *fpsFlag {
		settings.Render.ShowStats = true
	}
	if *mazeFlag {
		settings = settings.WithMaze(world.MazeConfig{
			Rows:     world.MaxMazeSide,
			Cols:     world.MaxMazeSide,
			Braiding: *braidFlag,
			Seed:     *seedFlag,
		})
		log.Printf("map: generated maze seed=%d braid=%.2f", *seedFlag, *braidFlag)
	}
	log.Printf("config: %dx%d fov=%.3f depth=%.1f workers=%d", settings.Render.ScreenWidth,
		settings.Render.ScreenHeight, settings.Render.FOV, settings.Render.Depth, settings.Render.WorkerCount())

	state, err := engine.NewRenderState(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	renderer := engine.NewRenderer(state.Map, state.Config)

	if *snapshotFlag {
		if err := snapshot(state, renderer); err != nil {
			fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(state, renderer, keys); err != nil {
		log.Printf("loop: %v", err)
		fmt.Fprintf(os.Stderr, "ray-caster: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loop: exit after %d frames", state.Stats.Frames.Load())
}

// loadSettings returns defaults when path is empty
func loadSettings(path string) (engine.Settings, *input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return engine.DefaultSettings(), keys, nil
	}

	settings, data, err := engine.LoadSettingsFile(path)
	if err != nil {
		return engine.Settings{}, nil, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return engine.Settings{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	keys.Merge(override)
	return settings, keys, nil
}

// snapshot renders the start view once, without a terminal
func snapshot(state *engine.RenderState, renderer *engine.Renderer) error {
	display := render.NewWriterDisplay(os.Stdout)
	renderer.Render(state, 0)
	return display.Present(state.Frame)
}

func run(state *engine.RenderState, renderer *engine.Renderer, keys *input.KeyTable) (err error) {
	styler, err := applyColorMode(*colorFlag)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAY-CASTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.Clear()

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		}
	}
	defer sound.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	loop := &engine.Loop{
		State:    state,
		Renderer: renderer,
		Display:  render.NewTerminalDisplay(screen, styler),
		Source:   input.NewEventSource(events, keys, parameter.FirstHoldWindow, parameter.RepeatHoldWindow),
		OnBump:   func() { sound.PlayBump() },
	}

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyColorMode selects the glyph styler; tcell reads the color env on NewScreen
func applyColorMode(mode string) (render.Styler, error) {
	switch mode {
	case "auto", "":
		return render.StyleFor, nil
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
		return render.StyleFor, nil
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
		return render.StyleFor, nil
	case "mono":
		return render.PlainStyle, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
}
