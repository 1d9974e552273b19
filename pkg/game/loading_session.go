package game

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/components"
	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/surface"
	"github.com/decker502/movieque/pkg/systems"
)

// SessionOptions 创建加载会话的参数
type SessionOptions struct {
	// Config 粒子场配置，为 nil 时使用默认配置
	Config *config.FieldConfig

	// Width/Height 画布尺寸，会话创建时读取一次
	Width  float64
	Height float64

	// Rand 随机源，为 nil 时使用随机种子（测试时注入固定种子）
	Rand *rand.Rand

	// OnComplete 进度完成并等待延迟后调用，每个会话至多一次
	OnComplete func()
}

// LoadingSession 一次加载过渡动画的全部状态
//
// 会话创建时获取三个订阅：帧循环、进度定时器、指针监听；
// Close() 按获取的逆序全部释放。无论正常完成、提前离开场景还是程序退出，
// 调用方只需保证 Close() 被调用一次，之后不会再有帧、递增或回调。
type LoadingSession struct {
	id string

	field   components.ReelFieldComponent
	pointer components.PointerComponent

	physics  *systems.ReelPhysicsSystem
	render   *systems.ReelRenderSystem
	progress *systems.ProgressSystem

	onComplete func()
	frames     int

	frameLoop     bool
	timer         bool
	pointerListen bool
	releases      []func()
	closed        bool
}

// NewLoadingSession 创建并启动一个加载会话
func NewLoadingSession(opts SessionOptions) *LoadingSession {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultFieldConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &LoadingSession{
		id: uuid.NewString(),
		field: components.ReelFieldComponent{
			Reels:  systems.SpawnReels(rng, cfg.Reels, opts.Width, opts.Height),
			Width:  opts.Width,
			Height: opts.Height,
		},
		physics:    systems.NewReelPhysicsSystem(cfg.Physics),
		render:     systems.NewReelRenderSystem(cfg.Style),
		onComplete: opts.OnComplete,
	}
	s.progress = systems.NewProgressSystem(cfg.Progress, s.complete)

	s.acquire("frame loop", &s.frameLoop)
	s.acquire("progress timer", &s.timer)
	s.acquire("pointer listener", &s.pointerListen)

	zap.S().Debugf("[LoadingSession] %s started: %d reels on %.0fx%.0f",
		s.id, len(s.field.Reels), opts.Width, opts.Height)

	return s
}

// acquire 标记一个订阅为活动状态，并记录对应的释放函数
func (s *LoadingSession) acquire(name string, active *bool) {
	*active = true
	s.releases = append(s.releases, func() {
		if *active {
			*active = false
			zap.S().Debugf("[LoadingSession] %s released %s", s.id, name)
		}
	})
}

// ID 会话标识（日志与终端模式的消息过滤）
func (s *LoadingSession) ID() string { return s.id }

// Update 推进一帧：物理步进 + 进度定时器累计 dt
func (s *LoadingSession) Update(dt time.Duration) {
	s.StepFrame()
	if s.timer {
		s.progress.Advance(dt)
	}
}

// StepFrame 只执行一次物理步进（帧循环订阅释放后无效）
func (s *LoadingSession) StepFrame() {
	if !s.frameLoop {
		return
	}
	s.physics.Step(&s.field, s.pointer)
	s.frames++
}

// Draw 把当前粒子状态绘制到画布
func (s *LoadingSession) Draw(canvas surface.Canvas) {
	if !s.frameLoop {
		return
	}
	s.render.Draw(canvas, &s.field)
}

// MovePointer 指针移动事件，监听释放后忽略
func (s *LoadingSession) MovePointer(x, y float64) {
	if !s.pointerListen {
		return
	}
	s.pointer = components.PointerComponent{X: x, Y: y, Seen: true}
}

// TickProgress 由外部定时器驱动的一次进度递增，返回本次是否到达 100
func (s *LoadingSession) TickProgress() bool {
	if !s.timer {
		return false
	}
	return s.progress.Tick()
}

// FireCompletion 外部定时器在完成延迟结束后调用
func (s *LoadingSession) FireCompletion() bool {
	if !s.timer {
		return false
	}
	return s.progress.Fire()
}

// complete 进度回调：先停掉定时器，再通知调用方
func (s *LoadingSession) complete() {
	s.timer = false
	zap.S().Debugf("[LoadingSession] %s complete after %d frames", s.id, s.frames)
	if s.onComplete != nil {
		s.onComplete()
	}
}

// Close 释放全部订阅，可重复调用
func (s *LoadingSession) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.progress.Cancel()
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil

	zap.S().Debugf("[LoadingSession] %s closed at %d%% (%s)", s.id, s.progress.Value(), s.progress.Phase())
}

// Progress 当前百分比
func (s *LoadingSession) Progress() int { return s.progress.Value() }

// ProgressFraction 当前进度 0.0 - 1.0
func (s *LoadingSession) ProgressFraction() float64 { return s.progress.Fraction() }

// Phase 进度状态
func (s *LoadingSession) Phase() components.ProgressPhase { return s.progress.Phase() }

// TickInterval 进度递增间隔
func (s *LoadingSession) TickInterval() time.Duration { return s.progress.Interval() }

// CompletionDelay 完成回调延迟
func (s *LoadingSession) CompletionDelay() time.Duration { return s.progress.Delay() }

// Field 粒子场（只读使用）
func (s *LoadingSession) Field() *components.ReelFieldComponent { return &s.field }

// Pointer 最近一次指针状态
func (s *LoadingSession) Pointer() components.PointerComponent { return s.pointer }

// Frames 已执行的物理帧数
func (s *LoadingSession) Frames() int { return s.frames }

// Closed 是否已关闭
func (s *LoadingSession) Closed() bool { return s.closed }

// ActiveSubscriptions 仍处于活动状态的订阅数
func (s *LoadingSession) ActiveSubscriptions() int {
	n := 0
	for _, active := range []bool{s.frameLoop, s.timer, s.pointerListen} {
		if active {
			n++
		}
	}
	return n
}
