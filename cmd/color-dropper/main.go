package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/color-dropper/internal/dropper"
	"github.com/ironsheep/color-dropper/internal/server"
	"github.com/ironsheep/color-dropper/internal/ui/window"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// config is read from the environment.
type config struct {
	imagePath  string
	debug      bool
	clipboard  bool
	clampUpper bool
}

func loadConfig() config {
	cfg := config{
		imagePath:  os.Getenv("COLOR_DROPPER_IMAGE"),
		debug:      os.Getenv("COLOR_DROPPER_LOG_LEVEL") == "debug",
		clipboard:  os.Getenv("COLOR_DROPPER_CLIPBOARD") == "1",
		clampUpper: os.Getenv("COLOR_DROPPER_CLAMP_UPPER") == "1",
	}
	if cfg.imagePath == "" {
		cfg.imagePath = "background.jpg"
	}
	return cfg
}

func main() {
	serve := false

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-dropper %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--serve", "serve":
			serve = true
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q (see --help)\n", os.Args[1])
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol in --serve)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := loadConfig()
	if cfg.debug {
		log.Printf("Color Dropper v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	geometry := dropper.DefaultConfig()
	geometry.ClampUpper = cfg.clampUpper

	if serve {
		srv, err := server.NewWithOptions(server.Options{Config: geometry, Debug: cfg.debug})
		if err != nil {
			log.Fatalf("Startup error: %v", err)
		}
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	err := window.Run(window.Options{
		ImagePath:       cfg.imagePath,
		Config:          geometry,
		CopyToClipboard: cfg.clipboard,
		Debug:           cfg.debug,
	})
	if errors.Is(err, dropper.ErrInitialization) {
		log.Fatalf("Startup error: %v", err)
	}
	if err != nil {
		log.Fatalf("Window error: %v", err)
	}
}

func printHelp() {
	fmt.Println("color-dropper - magnifying color picker")
	fmt.Println()
	fmt.Println("Usage: color-dropper [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --serve          Run headless, driven by MCP over stdin/stdout")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println("  P or the toolbar button   Toggle picker mode")
	fmt.Println("  Click on the image        Commit the hovered color (picker mode)")
	fmt.Println("  Q / Esc                   Quit")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  COLOR_DROPPER_IMAGE=path       Image to display (default background.jpg)")
	fmt.Println("  COLOR_DROPPER_LOG_LEVEL=debug  Enable debug logging")
	fmt.Println("  COLOR_DROPPER_CLIPBOARD=1      Copy committed colors to the clipboard")
	fmt.Println("  COLOR_DROPPER_CLAMP_UPPER=1    Keep the magnifier window inside the right/bottom edge")
}
