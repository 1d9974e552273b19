package scenes

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/game"
	"github.com/decker502/movieque/pkg/utils"
)

// 路由名
const (
	RouteLanding  = "landing"
	RouteLoading  = "loading"
	RouteServices = "services"
)

// Navigator 场景切换入口，*game.SceneManager 实现了它
type Navigator interface {
	Navigate(route string)
}

// Deps 各场景共享的依赖
type Deps struct {
	Navigator Navigator
	Settings  *game.SettingsManager
	Field     config.FieldSource
}

// NewSceneFactory 按路由名创建场景
func NewSceneFactory(deps Deps) game.SceneFactory {
	return func(route string) game.Scene {
		switch route {
		case RouteLanding:
			return NewLandingScene(deps)
		case RouteLoading:
			return NewLoadingScene(deps)
		case RouteServices:
			return NewServicesScene(deps)
		}
		return nil
	}
}

// currentField 取最新的粒子场配置，没有来源时使用默认值
func (d Deps) currentField() *config.FieldConfig {
	if d.Field != nil {
		if cfg := d.Field.Current(); cfg != nil {
			return cfg
		}
	}
	return config.DefaultFieldConfig()
}

func (d Deps) navigate(route string) {
	if d.Navigator != nil {
		d.Navigator.Navigate(route)
	}
}

func (d Deps) currency() config.Currency {
	if d.Settings == nil {
		return config.CurrencyUSD
	}
	return d.Settings.GetSettings().Currency
}

// loadFace 加载字体，失败时记录日志并返回 nil（绘制时跳过该文字）
func loadFace(component, name string, size float64, bold bool) *text.GoTextFace {
	face, err := utils.LoadFace(size, bold)
	if err != nil {
		zap.S().Warnf("[%s] Failed to load %s font: %v", component, name, err)
		return nil
	}
	return face
}
