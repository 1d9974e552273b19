package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (landing hero, loading transition, services page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，用于在场景被切换掉或程序退出时释放资源
//
// 加载场景通过它关闭 LoadingSession，保证定时器、帧循环、指针监听
// 在任何退出路径上都被释放。Dispose 可能被调用多次，实现需保证幂等。
type Disposable interface {
	Dispose()
}
