package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/movieque/pkg/app"
	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/game"
	"github.com/decker502/movieque/pkg/tui"
)

// options 命令行参数与 MOVIEQUE_* 环境变量合并后的运行参数
type options struct {
	verbose     bool
	fieldConfig string
	watch       bool
	appName     string
	skipLanding bool
	logFile     string
	scale       float64
}

// bindFlags 注册公共参数，默认值来自环境变量
func bindFlags(cmd *cobra.Command, opts *options, env config.Env) {
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", env.Verbose, "enable debug logging")
	flags.StringVar(&opts.fieldConfig, "field-config", env.FieldConfigPath, "particle field YAML (defaults to the embedded one)")
	flags.BoolVar(&opts.watch, "watch", env.WatchField, "reload --field-config when the file changes")
	flags.StringVar(&opts.appName, "app-name", env.AppName, "settings storage name")
}

func rootCmd() *cobra.Command {
	env, envErr := config.ReadEnv()
	if envErr != nil {
		// 环境变量格式错误时使用默认值，错误在命令执行时报告
		env = config.Env{AppName: config.DefaultAppName}
	}

	opts := &options{}
	root := &cobra.Command{
		Use:   "movieque",
		Short: "MOVIEQUE landing page with the film-reel loading transition",
		Long: `Opens the MOVIEQUE window: landing hero, film-reel loading transition and plans.

Keys: Enter explore, Esc back, C colour mode, Y currency, F11 fullscreen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return fmt.Errorf("failed to read environment: %w", envErr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), opts)
		},
	}
	bindFlags(root, opts, env)
	root.Flags().BoolVar(&opts.skipLanding, "skip-landing", false, "start directly at the loading transition")

	root.AddCommand(termCmd(opts))
	return root
}

func termCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Preview the loading transition in the terminal",
		Long:  "Renders the film-reel field in braille; move the mouse to push the reels, q to quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.logFile, "log-file", "movieque.log", "debug log destination when --verbose is set")
	cmd.Flags().Float64Var(&opts.scale, "scale", tui.DefaultScale, "field pixels per braille dot")
	return cmd
}

// runWindow 运行桌面窗口；ebiten 主循环必须在主 goroutine 上运行，
// 配置监听器在 errgroup 中运行，窗口关闭后一起退出
func runWindow(parent context.Context, opts *options) error {
	logger, err := app.SetupLogger(opts.verbose, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	source, watcher := loadFieldSource(opts.fieldConfig, opts.watch)
	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}

	a, err := app.NewApp(app.Config{
		AppName:     opts.appName,
		Field:       source,
		SkipLanding: opts.skipLanding,
	})
	if err != nil {
		cancel()
		_ = g.Wait()
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	runErr := a.Run(gctx)
	cancel()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// runTerm 运行终端预览，与配置监听器一起在 errgroup 中运行
func runTerm(parent context.Context, opts *options) error {
	logger, err := app.SetupLogger(opts.verbose, opts.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	source, watcher := loadFieldSource(opts.fieldConfig, opts.watch)
	settings := game.OpenSettingsManager(opts.appName)

	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}
	g.Go(func() error {
		defer cancel()
		return tui.Run(gctx, tui.Options{
			Field:    source.Current(),
			Settings: settings,
			Scale:    opts.scale,
		})
	})

	return g.Wait()
}

// loadFieldSource 选择粒子场配置来源
//
// 没有指定文件时使用内嵌配置；指定文件且 --watch 时返回监听器。
// 配置文件错误只记录日志并使用默认值。
func loadFieldSource(path string, watch bool) (config.FieldSource, *config.FieldWatcher) {
	if path == "" {
		if watch {
			zap.S().Warnf("[CLI] --watch needs --field-config, ignoring")
		}
		cfg, err := config.LoadEmbeddedFieldConfig()
		if err != nil {
			zap.S().Warnf("[CLI] %v (using defaults)", err)
			cfg = nil
		}
		return config.NewStaticField(cfg), nil
	}

	if watch {
		watcher, err := config.NewFieldWatcher(path, nil)
		if err == nil {
			return watcher, watcher
		}
		zap.S().Warnf("[CLI] cannot watch %s: %v", path, err)
	}

	cfg, err := config.LoadFieldConfig(path)
	if err != nil {
		zap.S().Warnf("[CLI] %v (using defaults)", err)
		cfg = nil
	}
	return config.NewStaticField(cfg), nil
}
