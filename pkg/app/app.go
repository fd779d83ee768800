// Package app 提供雪花查看器的 ebiten 宿主
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/snowfall/pkg/config"
	"github.com/decker502/snowfall/pkg/flakes"
	"github.com/decker502/snowfall/pkg/game"
	"github.com/decker502/snowfall/pkg/platform"
	"github.com/decker502/snowfall/pkg/render"
	"github.com/decker502/snowfall/pkg/snowfall"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 宿主配置文件路径，为空则使用内置默认配置
	ConfigPath string
	// Mode 覆盖动画模式（"falling" / "melting"），为空则使用存档或配置
	Mode string
	// FlakesDir 自定义雪花图片目录，为空则使用配置
	FlakesDir string
	// AppName gdata 存储名，为空则不持久化设置
	AppName string
}

// App 雪花查看器，实现 ebiten.Game 接口
type App struct {
	cfg      *config.SnowfallConfig
	settings *game.SettingsManager
	flakes   snowfall.FlakeType
	colors   []color.Color
	bg       color.Color

	driver  *snowfall.Driver
	size    snowfall.CanvasSize
	start   time.Time
	paused  bool
	verbose bool
}

// NewApp 创建并初始化查看器
//
// 使用 "data/" 路径前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	hostCfg := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		hostCfg = loaded
	}

	var settings *game.SettingsManager
	if cfg.AppName != "" {
		settings, _ = game.NewSettingsManager(game.OpenStorage(cfg.AppName))
	} else {
		settings, _ = game.NewSettingsManager(nil)
	}

	// 模式优先级：命令行 > 存档 > 配置文件
	animType := hostCfg.AnimType()
	if cfg.AppName != "" {
		animType = settings.AnimType()
	}
	if cfg.Mode != "" {
		t, err := snowfall.ParseAnimType(cfg.Mode)
		if err != nil {
			return nil, err
		}
		animType = t
	}

	flakeType, err := resolveFlakes(hostCfg, cfg.FlakesDir)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      hostCfg,
		settings: settings,
		flakes:   flakeType,
		colors:   hostCfg.Colors(),
		bg:       hostCfg.BackgroundColor(),
		start:    time.Now(),
		paused:   settings.GetSettings().Paused,
		verbose:  cfg.Verbose,
	}
	if err := a.attach(animType); err != nil {
		return nil, err
	}
	log.Printf("[App] Started in %s mode", animType)
	return a, nil
}

// resolveFlakes 选择内置或自定义雪花图片
func resolveFlakes(cfg *config.SnowfallConfig, dirOverride string) (snowfall.FlakeType, error) {
	dir := dirOverride
	if dir == "" && !cfg.UsesDefaultFlakes() {
		dir = cfg.Flakes
	}
	if dir == "" {
		return snowfall.DefaultFlakes(), nil
	}
	images, err := flakes.LoadDir(dir)
	if err != nil {
		return snowfall.FlakeType{}, fmt.Errorf("自定义雪花加载失败: %w", err)
	}
	return snowfall.CustomFlakes(render.ToEbitenImages(images)...), nil
}

// defaultEbitenFlakes 将内置雪花转换为 ebiten 图片
func defaultEbitenFlakes() []snowfall.Image {
	return render.ToEbitenImages(flakes.Default())
}

// attach 为指定模式创建新的 Driver，替换旧的
func (a *App) attach(animType snowfall.AnimType) error {
	d, err := snowfall.Attach(a.flakes, animType,
		snowfall.WithColors(a.colors...),
		snowfall.WithDefaultImages(defaultEbitenFlakes),
	)
	if err != nil {
		return err
	}
	if a.driver != nil {
		a.driver.Dispose()
	}
	if !a.size.Empty() {
		d.Resize(a.size)
	}
	a.driver = d
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		a.settings.SetFullscreen(full)
		a.saveSettings()
	}

	gesture := platform.ReadGesture()
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || gesture == platform.GestureTap {
		if err := a.ToggleMode(); err != nil {
			return err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || gesture == platform.GestureTwoFingerTap {
		a.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(a.Status()); err != nil {
			log.Printf("[App] Warning: clipboard unavailable: %v", err)
		}
	}

	if !a.paused {
		a.driver.Frame(int64(time.Since(a.start)))
	}
	return nil
}

// ToggleMode 在下落和融化之间切换，并保存为下次启动的模式
func (a *App) ToggleMode() error {
	next := snowfall.Melting
	if a.driver.State().AnimType() == snowfall.Melting {
		next = snowfall.Falling
	}
	if err := a.attach(next); err != nil {
		return err
	}
	a.settings.SetMode(next)
	a.saveSettings()
	log.Printf("[App] Switched to %s mode", next)
	return nil
}

// TogglePause 暂停或继续动画；继续时重置时钟，避免一次性跳过暂停期间的时间
func (a *App) TogglePause() {
	a.paused = !a.paused
	if !a.paused {
		a.driver.ResetClock()
	}
	a.settings.SetPaused(a.paused)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制背景和雪花
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.bg)
	a.driver.Draw(render.NewEbitenSurface(screen))
}

// Layout 使用窗口实际尺寸作为画布，尺寸变化时重新生成雪花
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := snowfall.CanvasSize{Width: outsideWidth, Height: outsideHeight}
	if size != a.size {
		a.size = size
		a.driver.Resize(size)
	}
	return outsideWidth, outsideHeight
}

// Status 返回当前状态描述
func (a *App) Status() string {
	st := a.driver.State()
	return fmt.Sprintf("snowfall mode=%s canvas=%s flakes=%d frames=%d paused=%v",
		st.AnimType(), st.Size(), st.Len(), a.driver.Frames(), a.paused)
}

// Driver 返回当前的动画驱动
func (a *App) Driver() *snowfall.Driver {
	return a.driver
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Fullscreen 返回是否以全屏启动
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Close 释放 Driver 并保存设置
func (a *App) Close() {
	a.driver.Dispose()
	a.saveSettings()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
