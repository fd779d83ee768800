// Package main renders the snowfall animation in a terminal.
//
// Usage:
//
//	go run ./cmd/snowfall-term [flags]
//
// Flags:
//
//	--mode <falling|melting>  Animation mode (default: config)
//	--config <path>           Host config file (default: embedded defaults)
//	--fps <n>                 Frame rate (default: config fps)
//	--verbose                 Log to snowfall-term.log
//
// Controls:
//
//	q/Escape/Ctrl-C  - Quit
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/snowfall/pkg/config"
	"github.com/decker502/snowfall/pkg/render"
	"github.com/decker502/snowfall/pkg/snowfall"
)

var (
	modeFlag    = flag.String("mode", "", "Animation mode: falling or melting")
	configFlag  = flag.String("config", "", "Host config file")
	fpsFlag     = flag.Int("fps", 0, "Frame rate (0 uses the config value)")
	verboseFlag = flag.Bool("verbose", false, "Write logs to snowfall-term.log")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	if *verboseFlag {
		f, err := os.Create("snowfall-term.log")
		if err != nil {
			log.Fatalf("无法创建日志文件: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
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

	animType := cfg.AnimType()
	if *modeFlag != "" {
		t, err := snowfall.ParseAnimType(*modeFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		animType = t
	}

	fps := cfg.FPS
	if *fpsFlag > 0 {
		fps = *fpsFlag
	}
	if fps <= 0 {
		fps = config.Default().FPS
	}

	driver, err := snowfall.Attach(snowfall.DefaultFlakes(), animType,
		snowfall.WithDefaultImages(render.DefaultGlyphs),
		snowfall.WithColors(cfg.Colors()...),
		snowfall.WithTunables(cfg.Tunables()),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer driver.Dispose()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("终端初始化失败: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("终端初始化失败: %v", err)
	}
	defer screen.Fini()

	surface := render.NewTerminalSurface(screen, cfg.BackgroundColor())
	surface.Clear()
	driver.Resize(surface.CanvasSize(screen.Size()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go handleEvents(screen, surface, driver, cancel)

	clock := snowfall.Ticker(ctx, time.Second/time.Duration(fps))
	err = driver.Run(ctx, clock, func() {
		surface.Clear()
		driver.Draw(surface)
		screen.Show()
	})
	if err != nil && ctx.Err() == nil {
		log.Printf("[Term] Stopped: %v", err)
	}
}

// handleEvents 在独立 goroutine 中处理按键和窗口尺寸变化
func handleEvents(screen tcell.Screen, surface *render.TerminalSurface, driver *snowfall.Driver, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Fini 之后返回 nil
			return
		case *tcell.EventResize:
			screen.Sync()
			driver.Resize(surface.CanvasSize(ev.Size()))
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
				return
			}
		}
	}
}
