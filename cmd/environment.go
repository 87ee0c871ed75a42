package cmd

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"goloc/internal/config"
	"goloc/internal/languages"
	"goloc/internal/logging"
)

const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagNoColor     = "no-color"
	flagFormat      = "format"
	flagOutput      = "output"
	flagWorkers     = "workers"
	flagByFile      = "by-file"
	flagExcludeDirs = "exclude-dirs"
	flagHidden      = "hidden"
	flagSkipVendor  = "skip-vendor"
	flagMaxFileSize = "max-file-size"
)

// environment 是一次命令执行所需的配置、日志与语言注册表。
type environment struct {
	cfg      *config.Config
	logger   *logrus.Entry
	registry *languages.Registry
}

// loadEnvironment 合并默认值、配置文件、环境变量与命令行参数，并据此构建运行环境。
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	logger, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	profiles, err := cfg.Profiles()
	if err != nil {
		return nil, err
	}
	if len(profiles) > 0 {
		logger.Debugf("Registered %d custom languages", len(profiles))
	}

	if configPath != "" {
		logger.Debugf("Using config file %s", configPath)
	}

	return &environment{
		cfg:      cfg,
		logger:   logger,
		registry: languages.NewRegistry(profiles...),
	}, nil
}

// targetPath 返回命令参数中的扫描路径，缺省为当前目录。
func targetPath(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
