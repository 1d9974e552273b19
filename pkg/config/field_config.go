package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/movieque/pkg/embedded"
)

// DefaultFieldConfigPath 内嵌的粒子场默认配置
const DefaultFieldConfigPath = "data/loading_field.yaml"

// FieldConfig 加载动画粒子场配置
//
// 所有参数都是调校值而非语义约束，缺省值与网页版加载页一致。
//
// 配置文件位置: data/loading_field.yaml
type FieldConfig struct {
	// Reels 胶片盘生成参数
	Reels ReelSpawnConfig `yaml:"reels"`

	// Physics 指针排斥、阻尼与边界反弹参数
	Physics PhysicsConfig `yaml:"physics"`

	// Style 胶片盘绘制样式
	Style ReelStyleConfig `yaml:"style"`

	// Progress 进度驱动节奏
	Progress ProgressConfig `yaml:"progress"`
}

// ReelSpawnConfig 胶片盘初始化参数
type ReelSpawnConfig struct {
	// Count 胶片盘数量，会话期间固定
	Count int `yaml:"count"`

	// InitialSpeed 每个轴上初始速度的绝对值上限（像素/帧）
	InitialSpeed float64 `yaml:"initialSpeed"`

	// MaxRotationSpeed 旋转速度绝对值上限（弧度/帧）
	MaxRotationSpeed float64 `yaml:"maxRotationSpeed"`
}

// PhysicsConfig 每帧物理步进参数
type PhysicsConfig struct {
	// RepulsionRadius 指针排斥半径（像素）
	RepulsionRadius float64 `yaml:"repulsionRadius"`

	// RepulsionStrength 线性衰减排斥的强度系数
	RepulsionStrength float64 `yaml:"repulsionStrength"`

	// Damping 每帧速度衰减系数
	Damping float64 `yaml:"damping"`

	// Bounce 撞边后速度保留比例（反向）
	Bounce float64 `yaml:"bounce"`
}

// ReelStyleConfig 胶片盘外观
type ReelStyleConfig struct {
	Radius     float64 `yaml:"radius"`
	LineWidth  float64 `yaml:"lineWidth"`
	Holes      int     `yaml:"holes"`
	HoleRadius float64 `yaml:"holeRadius"`
	// HoleRing 孔所在圆相对外圈半径的比例
	HoleRing float64 `yaml:"holeRing"`
	// HubRatio 中心圆相对外圈半径的比例
	HubRatio float64 `yaml:"hubRatio"`
	Color    string  `yaml:"color"`
}

// ProgressConfig 进度驱动参数
type ProgressConfig struct {
	TickIntervalMs    int `yaml:"tickIntervalMs"`
	Step              int `yaml:"step"`
	CompletionDelayMs int `yaml:"completionDelayMs"`
}

// DefaultFieldConfig 返回默认粒子场配置
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		Reels: ReelSpawnConfig{
			Count:            25,
			InitialSpeed:     1,
			MaxRotationSpeed: 0.025,
		},
		Physics: PhysicsConfig{
			RepulsionRadius:   100,
			RepulsionStrength: 2,
			Damping:           0.98,
			Bounce:            0.8,
		},
		Style: ReelStyleConfig{
			Radius:     30,
			LineWidth:  2,
			Holes:      8,
			HoleRadius: 3,
			HoleRing:   0.7,
			HubRatio:   0.3,
			Color:      "#38BDF8",
		},
		Progress: ProgressConfig{
			TickIntervalMs:    int(DefaultProgressTickInterval / time.Millisecond),
			Step:              DefaultProgressStep,
			CompletionDelayMs: int(DefaultCompletionDelay / time.Millisecond),
		},
	}
}

// LoadFieldConfig 从磁盘加载粒子场配置
//
// 文件中缺失的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *FieldConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// LoadEmbeddedFieldConfig 从内嵌资源加载默认粒子场配置
func LoadEmbeddedFieldConfig() (*FieldConfig, error) {
	data, err := embedded.ReadFile(DefaultFieldConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// ParseFieldConfig 解析 YAML 格式的粒子场配置并校验
func ParseFieldConfig(data []byte) (*FieldConfig, error) {
	cfg := DefaultFieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse field config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 数量、半径、间隔不能为负
//   - 阻尼与反弹系数在 [0, 1] 内
//   - 浮点参数必须是有限值（拒绝 .nan / .inf）
//   - 颜色必须是 #RRGGBB 格式
func (c *FieldConfig) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}

	if c.Reels.Count < 0 {
		return fmt.Errorf("reels.count must be >= 0, got %d", c.Reels.Count)
	}
	if c.Reels.InitialSpeed < 0 {
		return fmt.Errorf("reels.initialSpeed must be >= 0, got %.3f", c.Reels.InitialSpeed)
	}
	if c.Reels.MaxRotationSpeed < 0 {
		return fmt.Errorf("reels.maxRotationSpeed must be >= 0, got %.3f", c.Reels.MaxRotationSpeed)
	}

	if c.Physics.RepulsionRadius < 0 {
		return fmt.Errorf("physics.repulsionRadius must be >= 0, got %.1f", c.Physics.RepulsionRadius)
	}
	if c.Physics.Damping < 0 || c.Physics.Damping > 1 {
		return fmt.Errorf("physics.damping must be in [0, 1], got %.3f", c.Physics.Damping)
	}
	if c.Physics.Bounce < 0 || c.Physics.Bounce > 1 {
		return fmt.Errorf("physics.bounce must be in [0, 1], got %.3f", c.Physics.Bounce)
	}

	if c.Style.Radius <= 0 {
		return fmt.Errorf("style.radius must be > 0, got %.1f", c.Style.Radius)
	}
	if c.Style.Holes < 0 {
		return fmt.Errorf("style.holes must be >= 0, got %d", c.Style.Holes)
	}
	if _, err := ParseHexColor(c.Style.Color); err != nil {
		return fmt.Errorf("style.color: %w", err)
	}

	if c.Progress.TickIntervalMs <= 0 {
		return fmt.Errorf("progress.tickIntervalMs must be > 0, got %d", c.Progress.TickIntervalMs)
	}
	if c.Progress.Step <= 0 {
		return fmt.Errorf("progress.step must be > 0, got %d", c.Progress.Step)
	}
	if c.Progress.CompletionDelayMs < 0 {
		return fmt.Errorf("progress.completionDelayMs must be >= 0, got %d", c.Progress.CompletionDelayMs)
	}

	return nil
}

// validateFinite NaN 与比较运算均为 false，范围检查拦不住，需单独拒绝
func (c *FieldConfig) validateFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"reels.initialSpeed", c.Reels.InitialSpeed},
		{"reels.maxRotationSpeed", c.Reels.MaxRotationSpeed},
		{"physics.repulsionRadius", c.Physics.RepulsionRadius},
		{"physics.repulsionStrength", c.Physics.RepulsionStrength},
		{"physics.damping", c.Physics.Damping},
		{"physics.bounce", c.Physics.Bounce},
		{"style.radius", c.Style.Radius},
		{"style.lineWidth", c.Style.LineWidth},
		{"style.holeRadius", c.Style.HoleRadius},
		{"style.holeRing", c.Style.HoleRing},
		{"style.hubRatio", c.Style.HubRatio},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}
	return nil
}

// TickInterval 进度递增间隔
func (p ProgressConfig) TickInterval() time.Duration {
	return time.Duration(p.TickIntervalMs) * time.Millisecond
}

// CompletionDelay 完成后的回调延迟
func (p ProgressConfig) CompletionDelay() time.Duration {
	return time.Duration(p.CompletionDelayMs) * time.Millisecond
}

// RGBA 返回绘制颜色，格式错误时退回默认青色
func (s ReelStyleConfig) RGBA() color.RGBA {
	c, err := ParseHexColor(s.Color)
	if err != nil {
		return color.RGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF}
	}
	return c
}

// ParseHexColor 解析 "#RRGGBB" 颜色字符串
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q is not #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not #RRGGBB: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
