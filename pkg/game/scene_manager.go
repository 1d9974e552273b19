package game

import (
	"go.uber.org/zap"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据路由名创建场景，避免 scenes 包与 game 包循环依赖
type SceneFactory func(route string) Scene

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	prev := sm.currentScene
	sm.currentScene = scene

	if prev != nil && prev != scene {
		dispose(prev)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Navigate 通过工厂函数切换到指定路由的场景
// route: 路由名，如 "landing", "services"
func (sm *SceneManager) Navigate(route string) {
	zap.S().Debugf("[SceneManager] navigate: %s", route)

	if sm.sceneFactory == nil {
		zap.S().Warnf("[SceneManager] SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(route)
	if newScene == nil {
		zap.S().Warnf("[SceneManager] 无法创建场景: %s", route)
		return
	}
	sm.SwitchTo(newScene)
}

// Close 释放当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	if sm.currentScene != nil {
		dispose(sm.currentScene)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func dispose(scene Scene) {
	if d, ok := scene.(Disposable); ok {
		d.Dispose()
	}
}
