// Package main is the desktop snowfall viewer.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--mode <falling|melting>  Animation mode (default: saved setting, then config)
//	--flakes <dir>            Directory of custom flake images
//	--config <path>           Host config file (default: embedded data/snowfall.yaml)
//	--verbose                 Enable verbose logging
//
// Controls:
//
//	M    - Toggle falling / melting
//	P    - Pause / resume
//	C    - Copy status line to clipboard
//	F11  - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/snowfall/pkg/app"
	"github.com/decker502/snowfall/pkg/config"
	"github.com/decker502/snowfall/pkg/embedded"
)

var (
	modeFlag    = flag.String("mode", "", "Animation mode: falling or melting")
	flakesFlag  = flag.String("flakes", "", "Directory of custom flake images")
	configFlag  = flag.String("config", config.DefaultConfigPath, "Host config file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	viewer, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Mode:       *modeFlag,
		FlakesDir:  *flakesFlag,
		AppName:    "snowfall",
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer viewer.Close()

	w, h := viewer.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snowfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(viewer.Fullscreen())

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
