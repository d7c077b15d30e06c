// Command triangle opens a window and draws a red triangle until the window
// is closed.
//
// Usage:
//
//	go run ./cmd/triangle/ [--config triangle.toml] [--env-file .env] [--frames N]
//
// Settings come from defaults, the TOML file, TRIANGLE_* variables in the
// env files and the process environment, then flags, in that order.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	triangle "github.com/TolgaAktas/OpenGL"
	"github.com/TolgaAktas/OpenGL/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("triangle", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to a TOML config file")
	envFiles := flags.StringSlice("env-file", nil, "dotenv files with TRIANGLE_* settings")
	frames := flags.Int("frames", 0, "stop after this many frames (0 runs until closed)")
	logLevel := flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := triangle.LoadConfig(*configPath, *envFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.Changed("frames") {
		cfg.Frames = *frames
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := triangle.NewLogger()
	log.SetLevel(cfg.Level())

	window, err := opengl.Open(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Close()

	app := triangle.New(opengl.NewDriver(), window, append(cfg.Options(), triangle.WithLogger(log))...)
	defer app.Delete()

	if err := app.Setup(); err != nil {
		return err
	}

	return app.Run()
}
