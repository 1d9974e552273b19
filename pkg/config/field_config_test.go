package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// TestDefaultFieldConfig 默认值与网页版常量一致
func TestDefaultFieldConfig(t *testing.T) {
	cfg := DefaultFieldConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Reels.Count != 25 {
		t.Errorf("Reels.Count = %d, want 25", cfg.Reels.Count)
	}
	if cfg.Physics.RepulsionRadius != 100 || cfg.Physics.RepulsionStrength != 2 {
		t.Errorf("repulsion = %v/%v, want 100/2", cfg.Physics.RepulsionRadius, cfg.Physics.RepulsionStrength)
	}
	if cfg.Physics.Damping != 0.98 || cfg.Physics.Bounce != 0.8 {
		t.Errorf("damping/bounce = %v/%v, want 0.98/0.8", cfg.Physics.Damping, cfg.Physics.Bounce)
	}
	if cfg.Progress.TickInterval() != 60*time.Millisecond {
		t.Errorf("TickInterval = %v, want 60ms", cfg.Progress.TickInterval())
	}
	if cfg.Progress.CompletionDelay() != 500*time.Millisecond {
		t.Errorf("CompletionDelay = %v, want 500ms", cfg.Progress.CompletionDelay())
	}
}

// TestParseFieldConfigPartial 缺失字段保留默认值
func TestParseFieldConfigPartial(t *testing.T) {
	data := []byte(`
reels:
  count: 10
physics:
  damping: 0.9
style:
  color: "#FF0000"
`)

	cfg, err := ParseFieldConfig(data)
	if err != nil {
		t.Fatalf("ParseFieldConfig() error: %v", err)
	}

	want := DefaultFieldConfig()
	want.Reels.Count = 10
	want.Physics.Damping = 0.9
	want.Style.Color = "#FF0000"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

// TestParseFieldConfigInvalid 测试解析和校验失败
func TestParseFieldConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"YAML 语法错误", "reels: [", "failed to parse"},
		{"负数量", "reels:\n  count: -1", "reels.count"},
		{"阻尼超范围", "physics:\n  damping: 1.5", "physics.damping"},
		{"反弹为负", "physics:\n  bounce: -0.1", "physics.bounce"},
		{"半径为零", "style:\n  radius: 0", "style.radius"},
		{"颜色格式错误", "style:\n  color: blue", "style.color"},
		{"间隔为零", "progress:\n  tickIntervalMs: 0", "progress.tickIntervalMs"},
		{"步长为零", "progress:\n  step: 0", "progress.step"},
		{"延迟为负", "progress:\n  completionDelayMs: -5", "progress.completionDelayMs"},
		{"阻尼为 NaN", "physics:\n  damping: .nan", "physics.damping must be finite"},
		{"反弹为 NaN", "physics:\n  bounce: .nan", "physics.bounce must be finite"},
		{"排斥半径无穷", "physics:\n  repulsionRadius: .inf", "physics.repulsionRadius must be finite"},
		{"排斥强度负无穷", "physics:\n  repulsionStrength: -.inf", "physics.repulsionStrength must be finite"},
		{"初速 NaN", "reels:\n  initialSpeed: .nan", "reels.initialSpeed must be finite"},
		{"转速无穷", "reels:\n  maxRotationSpeed: .inf", "reels.maxRotationSpeed must be finite"},
		{"半径无穷", "style:\n  radius: .inf", "style.radius must be finite"},
		{"线宽 NaN", "style:\n  lineWidth: .nan", "style.lineWidth must be finite"},
		{"孔半径无穷", "style:\n  holeRadius: .inf", "style.holeRadius must be finite"},
		{"孔环 NaN", "style:\n  holeRing: .nan", "style.holeRing must be finite"},
		{"中心比例无穷", "style:\n  hubRatio: -.inf", "style.hubRatio must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFieldConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoadFieldConfig 测试从文件加载
func TestLoadFieldConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")
	if err := os.WriteFile(path, []byte("reels:\n  count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFieldConfig(path)
	if err != nil {
		t.Fatalf("LoadFieldConfig() error: %v", err)
	}
	if cfg.Reels.Count != 3 {
		t.Errorf("Reels.Count = %d, want 3", cfg.Reels.Count)
	}

	if _, err := LoadFieldConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should return an error")
	}
}

// TestBundledFieldConfig 仓库自带的配置文件与默认值一致
func TestBundledFieldConfig(t *testing.T) {
	cfg, err := LoadFieldConfig(filepath.Join("..", "..", DefaultFieldConfigPath))
	if err != nil {
		t.Fatalf("LoadFieldConfig() error: %v", err)
	}
	if diff := cmp.Diff(DefaultFieldConfig(), cfg); diff != "" {
		t.Errorf("bundled config differs from defaults (-want +got):\n%s", diff)
	}
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#38BDF8", color.RGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF}, false},
		{"38bdf8", color.RGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF}, false},
		{" #000000 ", color.RGBA{A: 0xFF}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestReelStyleRGBAFallback 颜色无效时退回默认青色
func TestReelStyleRGBAFallback(t *testing.T) {
	style := ReelStyleConfig{Color: "not-a-color"}
	if got := style.RGBA(); got != (color.RGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF}) {
		t.Errorf("RGBA() = %v, want #38BDF8", got)
	}
}
