package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger 安装全局 zap logger 并返回它
//
// 非 verbose 时使用 no-op logger（保持终端安静）；
// verbose 时输出 debug 级别日志到 outputPath，为空则输出到 stderr。
// 终端预览模式应传入文件路径，避免日志打乱界面。
func SetupLogger(verbose bool, outputPath string) (*zap.Logger, error) {
	if !verbose {
		logger := zap.NewNop()
		zap.ReplaceGlobals(logger)
		return logger, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	if outputPath != "" {
		cfg.OutputPaths = []string{outputPath}
		cfg.ErrorOutputPaths = []string{outputPath}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
