package config

import (
	"github.com/caarlos0/env/v11"
)

// DefaultAppName gdata 存储目录使用的应用名
const DefaultAppName = "movieque"

// Env 从环境变量读取的运行配置
// 命令行参数优先于环境变量
type Env struct {
	Verbose         bool   `env:"MOVIEQUE_VERBOSE" envDefault:"false"`
	FieldConfigPath string `env:"MOVIEQUE_FIELD_CONFIG"`
	WatchField      bool   `env:"MOVIEQUE_WATCH" envDefault:"false"`
	AppName         string `env:"MOVIEQUE_APP_NAME" envDefault:"movieque"`
}

// ReadEnv 解析 MOVIEQUE_* 环境变量
func ReadEnv() (Env, error) {
	return env.ParseAs[Env]()
}
