package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/ray-caster/engine"
	"github.com/lixenwraith/ray-caster/input"
	"github.com/lixenwraith/ray-caster/logging"
	"github.com/lixenwraith/ray-caster/window"
)

var (
	configFlag = flag.String("config", "", "Path to TOML settings file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ray-window.log")
	fpsFlag    = flag.Bool("fps", false, "Append ray and bump counters to the status line")
)

func main() {
	flag.Parse()

	logFile := logging.Setup(*debugFlag, "ray-window")
	if logFile != nil {
		defer logFile.Close()
	}

	settings, bindings, err := loadSettings(*configFlag)
	if err != nil {
		log.Printf("config: %v", err)
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if *fpsFlag {
		settings.Render.ShowStats = true
	}

	state, err := engine.NewRenderState(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	log.Printf("config: %dx%d workers=%d", state.Config.ScreenWidth, state.Config.ScreenHeight, state.Config.WorkerCount())

	loop := &engine.Loop{
		State:    state,
		Renderer: engine.NewRenderer(state.Map, state.Config),
	}
	game, err := window.NewGame(loop, bindings, window.EbitenKeys())
	if err != nil {
		log.Printf("window: %v", err)
		fmt.Fprintf(os.Stderr, "ray-window: %v\n", err)
		os.Exit(1)
	}

	if err := window.Run(game, "ray-caster"); err != nil {
		log.Printf("window: %v", err)
		fmt.Fprintf(os.Stderr, "ray-window: %v\n", err)
		os.Exit(1)
	}
	log.Printf("window: exit after %d frames", state.Stats.Frames.Load())
}

// loadSettings returns defaults when path is empty; [keys] overrides apply to the window bindings
func loadSettings(path string) (engine.Settings, window.Bindings, error) {
	bindings := window.DefaultBindings()
	if path == "" {
		return engine.DefaultSettings(), bindings, nil
	}

	settings, data, err := engine.LoadSettingsFile(path)
	if err != nil {
		return engine.Settings{}, bindings, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return engine.Settings{}, bindings, fmt.Errorf("%s: %w", path, err)
	}
	if skipped := bindings.Apply(override); skipped > 0 {
		log.Printf("config: %d key bindings have no window key and were skipped", skipped)
	}
	return settings, bindings, nil
}
