package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"

	"github.com/decker502/movieque/pkg/embedded"
)

func main() {
	_ = godotenv.Load()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	if err := fang.Execute(context.Background(), rootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
