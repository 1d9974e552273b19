package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/movieque/pkg/config"
)

// AppSettings 全局显示设置
type AppSettings struct {
	// ColorMode 无障碍颜色模式
	ColorMode config.ColorMode `yaml:"colorMode"`

	// Currency 套餐价格显示货币
	Currency config.Currency `yaml:"currency"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *AppSettings {
	return &AppSettings{
		ColorMode:  config.ColorModeNormal,
		Currency:   config.CurrencyUSD,
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AppSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		zap.S().Warnf("[SettingsManager] Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// OpenSettingsManager 打开 appName 对应的 gdata 存储并创建设置管理器
// gdata 不可用时退回降级模式
func OpenSettingsManager(appName string) *SettingsManager {
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		zap.S().Warnf("[SettingsManager] gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	sm, _ := NewSettingsManager(gdataManager)
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置；
// 无法识别的颜色模式或货币回退为默认值。
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if !loaded.ColorMode.IsValid() {
		loaded.ColorMode = config.ColorModeNormal
	}
	if !loaded.Currency.IsValid() {
		loaded.Currency = config.CurrencyUSD
	}

	sm.settings = loaded
	zap.S().Debugf("[SettingsManager] Settings loaded: %+v", *loaded)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	zap.S().Debugf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AppSettings {
	return sm.settings
}

// SetColorMode 设置颜色模式，未知模式被忽略
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetColorMode(mode config.ColorMode) {
	if !mode.IsValid() {
		return
	}
	sm.settings.ColorMode = mode
}

// CycleColorMode 切换到下一个颜色模式并立即保存
func (sm *SettingsManager) CycleColorMode() config.ColorMode {
	sm.settings.ColorMode = sm.settings.ColorMode.Next()
	sm.saveQuietly()
	return sm.settings.ColorMode
}

// SetCurrency 设置显示货币，未知货币被忽略
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetCurrency(c config.Currency) {
	if !c.IsValid() {
		return
	}
	sm.settings.Currency = c
}

// CycleCurrency 切换到下一个货币并立即保存
func (sm *SettingsManager) CycleCurrency() config.Currency {
	sm.settings.Currency = sm.settings.Currency.Next()
	sm.saveQuietly()
	return sm.settings.Currency
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func (sm *SettingsManager) saveQuietly() {
	if err := sm.Save(); err != nil {
		zap.S().Warnf("[SettingsManager] %v", err)
	}
}
