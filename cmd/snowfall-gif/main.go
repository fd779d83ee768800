// Package main renders the snowfall animation offscreen into an animated GIF.
//
// Usage:
//
//	go run ./cmd/snowfall-gif [flags]
//
// Flags:
//
//	--out <file>              Output file (default: snowfall.gif)
//	--frames <n>              Number of frames (default: 90)
//	--width, --height <px>    Canvas size (default: config window)
//	--mode <falling|melting>  Animation mode (default: config)
//	--flakes <dir>            Directory of custom flake images
//	--config <path>           Host config file, may carry a tuning section
//	--seed <n>                Random seed (default: 1)
//	--verbose                 Enable verbose logging
package main

import (
	"flag"
	"image/gif"
	"io"
	"log"
	"os"

	"github.com/decker502/snowfall/pkg/config"
	"github.com/decker502/snowfall/pkg/flakes"
	"github.com/decker502/snowfall/pkg/snowfall"
)

var (
	outFlag     = flag.String("out", "snowfall.gif", "Output GIF file")
	framesFlag  = flag.Int("frames", 90, "Number of frames to render")
	widthFlag   = flag.Int("width", 0, "Canvas width (0 uses the config window)")
	heightFlag  = flag.Int("height", 0, "Canvas height (0 uses the config window)")
	modeFlag    = flag.String("mode", "", "Animation mode: falling or melting")
	flakesFlag  = flag.String("flakes", "", "Directory of custom flake images")
	configFlag  = flag.String("config", "", "Host config file")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		cfg = loaded
	}

	opts := Options{
		Size:     snowfall.CanvasSize{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Frames:   *framesFlag,
		FPS:      cfg.FPS,
		AnimType: cfg.AnimType(),
		Flakes:   snowfall.DefaultFlakes(),
		Colors:   cfg.Colors(),
		BG:       cfg.BackgroundColor(),
		Tunables: cfg.Tunables(),
		Seed:     *seedFlag,
	}
	if *widthFlag > 0 {
		opts.Size.Width = *widthFlag
	}
	if *heightFlag > 0 {
		opts.Size.Height = *heightFlag
	}
	if *modeFlag != "" {
		t, err := snowfall.ParseAnimType(*modeFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		opts.AnimType = t
	}

	dir := *flakesFlag
	if dir == "" && !cfg.UsesDefaultFlakes() {
		dir = cfg.Flakes
	}
	if dir != "" {
		images, err := flakes.LoadDir(dir)
		if err != nil {
			log.Fatalf("自定义雪花加载失败: %v", err)
		}
		custom := make([]snowfall.Image, len(images))
		for i, img := range images {
			custom[i] = img
		}
		opts.Flakes = snowfall.CustomFlakes(custom...)
	}

	anim, err := Render(opts)
	if err != nil {
		log.Fatalf("渲染失败: %v", err)
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		log.Fatalf("无法创建输出文件: %v", err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		log.Fatalf("GIF 编码失败: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("GIF 写入失败: %v", err)
	}
	log.Printf("[GIF] Wrote %d frames (%s, %s) to %s", len(anim.Image), opts.AnimType, opts.Size, *outFlag)
}
