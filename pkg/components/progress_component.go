package components

import "time"

// ProgressPhase 进度驱动状态
type ProgressPhase int

const (
	// ProgressRunning 正在递增（0 <= Value < 100）
	ProgressRunning ProgressPhase = iota
	// ProgressComplete 已到达 100，等待完成延迟
	ProgressComplete
	// ProgressFired 完成回调已触发
	ProgressFired
	// ProgressCancelled 会话提前结束，不再递增也不会回调
	ProgressCancelled
)

// String 返回状态名称（用于日志）
func (p ProgressPhase) String() string {
	switch p {
	case ProgressRunning:
		return "running"
	case ProgressComplete:
		return "complete"
	case ProgressFired:
		return "fired"
	case ProgressCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ProgressComponent 加载进度
type ProgressComponent struct {
	Value int
	Phase ProgressPhase

	// Ticks 已执行的递增次数
	Ticks int

	// SinceTick 距上次递增累计的时间
	SinceTick time.Duration
	// SinceComplete 到达 100 后累计的时间
	SinceComplete time.Duration
}
