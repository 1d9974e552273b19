package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FieldSource 提供当前生效的粒子场配置
// 每个加载会话开始时读取一次
type FieldSource interface {
	Current() *FieldConfig
}

// StaticField 固定配置源
type StaticField struct {
	cfg *FieldConfig
}

// NewStaticField 创建固定配置源，cfg 为 nil 时使用默认配置
func NewStaticField(cfg *FieldConfig) StaticField {
	if cfg == nil {
		cfg = DefaultFieldConfig()
	}
	return StaticField{cfg: cfg}
}

// Current 返回固定配置
func (s StaticField) Current() *FieldConfig {
	return s.cfg
}

// DefaultReloadDebounce 最后一次文件事件之后等待多久再重新加载
const DefaultReloadDebounce = 150 * time.Millisecond

// FieldWatcher 监听粒子场配置文件，文件变更后重新加载
//
// 解析或校验失败时保留上一份有效配置。
// 监听的是所在目录，编辑器"写临时文件再改名"的保存方式同样能触发。
// 一次保存通常产生多个写事件，事件停止 debounce 时长后才读取文件，
// 避免读到写了一半但恰好是合法 YAML 的内容。
type FieldWatcher struct {
	path      string
	debounce  time.Duration
	current   atomic.Pointer[FieldConfig]
	watcher   *fsnotify.Watcher
	closeOnce sync.Once
	reloads   atomic.Int64
}

// NewFieldWatcher 创建配置监听器
//
// 参数:
//   - path: 配置文件路径
//   - initial: 初始配置，为 nil 时立即从 path 加载（失败则使用默认值）
func NewFieldWatcher(path string, initial *FieldConfig) (*FieldWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve field config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	fw := &FieldWatcher{
		path:     abs,
		debounce: DefaultReloadDebounce,
		watcher:  watcher,
	}

	if initial == nil {
		initial, err = LoadFieldConfig(abs)
		if err != nil {
			zap.S().Warnf("[FieldWatcher] %v (using defaults)", err)
			initial = DefaultFieldConfig()
		}
	}
	fw.current.Store(initial)

	return fw, nil
}

// Current 返回最近一次加载成功的配置
func (fw *FieldWatcher) Current() *FieldConfig {
	return fw.current.Load()
}

// Reloads 返回成功重新加载的次数
func (fw *FieldWatcher) Reloads() int64 {
	return fw.reloads.Load()
}

// SetDebounce 设置重新加载的防抖时长，d <= 0 时每个事件立即加载
// 需在 Run 之前调用
func (fw *FieldWatcher) SetDebounce(d time.Duration) {
	fw.debounce = d
}

// Run 处理文件事件直到 ctx 取消，返回前关闭底层 watcher
func (fw *FieldWatcher) Run(ctx context.Context) error {
	defer fw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-fire:
			fire = nil
			fw.reload()

		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if fw.debounce <= 0 {
				fw.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			zap.S().Warnf("[FieldWatcher] watch error: %v", err)
		}
	}
}

// Close 停止监听，可重复调用
func (fw *FieldWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		err = fw.watcher.Close()
	})
	return err
}

func (fw *FieldWatcher) reload() {
	data, err := os.ReadFile(fw.path)
	if err != nil {
		zap.S().Warnf("[FieldWatcher] keep previous config: %v", err)
		return
	}
	// 截断后尚未写入内容
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}

	cfg, err := ParseFieldConfig(data)
	if err != nil {
		zap.S().Warnf("[FieldWatcher] keep previous config: %v", err)
		return
	}
	fw.reloads.Add(1)
	fw.current.Store(cfg)
	zap.S().Infof("[FieldWatcher] reloaded %s (reels=%d)", fw.path, cfg.Reels.Count)
}
