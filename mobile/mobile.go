//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.movieque -o build/android/movieque.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/Movieque.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/movieque/pkg/app"
	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	embedded.Init(dataFS)

	if _, err := app.SetupLogger(true, ""); err != nil {
		log.Printf("logger setup failed: %v", err)
	}

	field, err := config.LoadEmbeddedFieldConfig()
	if err != nil {
		log.Printf("field config: %v (using defaults)", err)
		field = nil
	}

	gameApp, err := app.NewApp(app.Config{
		AppName: config.DefaultAppName,
		Field:   config.NewStaticField(field),
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
