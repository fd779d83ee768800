package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/snowfall/internal/particle"
	"github.com/decker502/snowfall/pkg/embedded"
	"github.com/decker502/snowfall/pkg/snowfall"
)

// DefaultConfigPath 嵌入的默认配置文件路径
const DefaultConfigPath = "data/snowfall.yaml"

// DefaultFlakeSet 表示使用内置雪花图片
const DefaultFlakeSet = "default"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid snowfall config")

// SnowfallConfig 雪花动画宿主配置
//
// 只包含宿主层面的参数（窗口、模式、图片集、调色板）。
// 模拟参数（密度、尺寸范围等）是固定常量，仅 Tuning 段落可供离屏工具覆盖。
//
// 配置文件位置: data/snowfall.yaml
type SnowfallConfig struct {
	// Window 窗口尺寸
	Window WindowConfig `yaml:"window"`

	// Mode 动画模式: "falling" 或 "melting"
	Mode string `yaml:"mode"`

	// Flakes 雪花图片集: "default" 或自定义图片目录
	Flakes string `yaml:"flakes"`

	// Background 背景色（十六进制）
	Background string `yaml:"background"`

	// Palette 雪花着色调色板（十六进制）
	Palette []string `yaml:"palette"`

	// FPS 离屏工具的帧率
	FPS int `yaml:"fps"`

	// Tuning 可选的模拟参数覆盖（仅离屏工具使用）
	Tuning *TuningConfig `yaml:"tuning,omitempty"`
}

// WindowConfig 窗口尺寸配置
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TuningConfig 模拟参数覆盖
//
// 范围使用 "[min max]" 格式，例如 sizeRange: "[5 12]"。
// 未设置的字段保持默认值。
type TuningConfig struct {
	Density        *float64        `yaml:"density,omitempty"`
	SizeRange      *particle.Range `yaml:"sizeRange,omitempty"`
	IncrementRange *particle.Range `yaml:"incrementRange,omitempty"`
	MaxAlphaRange  *particle.Range `yaml:"maxAlphaRange,omitempty"`
	AngleRange     *float64        `yaml:"angleRange,omitempty"`
}

// Default 返回内置默认配置（与 data/snowfall.yaml 一致）
func Default() *SnowfallConfig {
	return &SnowfallConfig{
		Window:     WindowConfig{Width: 800, Height: 600},
		Mode:       "falling",
		Flakes:     DefaultFlakeSet,
		Background: "#0b1a2e",
		Palette:    []string{"#ffffff", "#e3f2fd", "#bbdefb", "#90caf9"},
		FPS:        30,
	}
}

// Load 加载雪花动画配置
//
// 以 "data/" 开头且嵌入资源已初始化时从嵌入资源读取，否则从磁盘读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/snowfall.yaml"）
//
// 返回:
//   - *SnowfallConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func Load(path string) (*SnowfallConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snowfall config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded %s: mode=%s flakes=%s palette=%d", path, cfg.Mode, cfg.Flakes, len(cfg.Palette))
	return cfg, nil
}

// Parse 解析 YAML 配置并校验，缺省字段使用默认值
func Parse(data []byte) (*SnowfallConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse snowfall config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸为正
//   - 模式可识别
//   - 调色板非空且颜色可解析
//   - 帧率为正
//   - 覆盖的范围有效
func (c *SnowfallConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := snowfall.ParseAnimType(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.Flakes) == "" {
		return fmt.Errorf("%w: flakes must be %q or a directory", ErrInvalidConfig, DefaultFlakeSet)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	if _, err := ParseColors(c.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
		}
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Tuning != nil {
		// NaN 比较恒为 false，需要单独检查
		if d := c.Tuning.Density; d != nil && (math.IsNaN(*d) || *d < 0 || *d > 1) {
			return fmt.Errorf("%w: density %v outside [0, 1]", ErrInvalidConfig, *d)
		}
		if r := c.Tuning.SizeRange; r != nil && !validRange(*r, 0, math.Inf(1)) {
			return fmt.Errorf("%w: sizeRange %s must not be negative", ErrInvalidConfig, r)
		}
		if r := c.Tuning.IncrementRange; r != nil && !validRange(*r, 0, math.Inf(1)) {
			return fmt.Errorf("%w: incrementRange %s must not be negative", ErrInvalidConfig, r)
		}
		if r := c.Tuning.MaxAlphaRange; r != nil && !validRange(*r, 0, 1) {
			return fmt.Errorf("%w: maxAlphaRange %s outside [0, 1]", ErrInvalidConfig, r)
		}
		if a := c.Tuning.AngleRange; a != nil && (math.IsNaN(*a) || math.IsInf(*a, 0) || *a < 0) {
			return fmt.Errorf("%w: angleRange %v must be a non-negative number", ErrInvalidConfig, *a)
		}
	}
	return nil
}

// validRange 检查范围两端都是有限数且落在 [lo, hi] 内
func validRange(r particle.Range, lo, hi float64) bool {
	for _, v := range []float64{r.Min, r.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
			return false
		}
	}
	return true
}

// AnimType 返回配置的动画模式
func (c *SnowfallConfig) AnimType() snowfall.AnimType {
	t, err := snowfall.ParseAnimType(c.Mode)
	if err != nil {
		return snowfall.Falling
	}
	return t
}

// UsesDefaultFlakes 是否使用内置雪花
func (c *SnowfallConfig) UsesDefaultFlakes() bool {
	return c.Flakes == "" || c.Flakes == DefaultFlakeSet
}

// Colors 返回解析后的调色板，解析失败时退回白色
func (c *SnowfallConfig) Colors() []color.Color {
	colors, err := ParseColors(c.Palette)
	if err != nil || len(colors) == 0 {
		return snowfall.DefaultColors()
	}
	return colors
}

// BackgroundColor 返回背景色，未配置时为黑色
func (c *SnowfallConfig) BackgroundColor() color.Color {
	if c.Background == "" {
		return color.Black
	}
	bg, err := ParseColor(c.Background)
	if err != nil {
		return color.Black
	}
	return bg
}

// Tunables 将 Tuning 覆盖应用到默认模拟参数上
func (c *SnowfallConfig) Tunables() snowfall.Tunables {
	t := snowfall.DefaultTunables()
	if c.Tuning == nil {
		return t
	}
	if c.Tuning.Density != nil {
		t.Density = *c.Tuning.Density
	}
	if c.Tuning.SizeRange != nil {
		t.SizeRange = *c.Tuning.SizeRange
	}
	if c.Tuning.IncrementRange != nil {
		t.IncrementRange = *c.Tuning.IncrementRange
	}
	if c.Tuning.MaxAlphaRange != nil {
		t.MaxAlphaRange = *c.Tuning.MaxAlphaRange
	}
	if c.Tuning.AngleRange != nil {
		t.AngleRange = *c.Tuning.AngleRange
	}
	return t
}

// ParseColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色
func ParseColor(hex string) (color.RGBA, error) {
	cf, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := cf.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseColors 按顺序解析调色板
func ParseColors(hexes []string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
