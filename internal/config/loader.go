package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName 是不含扩展名的配置文件名。
const configName = ".goloc"

// configType 是配置文件格式。
const configType = "yaml"

// envPrefix 是环境变量前缀。
const envPrefix = "GOLOC"

// envKeySeparator 是环境变量名中嵌套 key 的分隔符，例如 GOLOC_LOG_LEVEL。
const envKeySeparator = "_"

// flagBindings 是配置 key 到命令行参数名的映射。
var flagBindings = map[string]string{
	"workers":       "workers",
	"format":        "format",
	"output":        "output",
	"by_file":       "by-file",
	"exclude_dirs":  "exclude-dirs",
	"hidden":        "hidden",
	"skip_vendor":   "skip-vendor",
	"max_file_size": "max-file-size",
	"no_color":      "no-color",
	"log.level":     "log-level",
}

// LoadConfig 合并默认值、配置文件、环境变量与命令行参数，返回校验后的配置。
//
// 约束说明：
// - configPath 非空时只读取该文件，否则依次在当前目录与 $HOME 查找 .goloc.yaml
// - 找不到配置文件不是错误，直接使用默认值
// - 只有命令行中显式设置的参数才会覆盖其它来源
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	if flags != nil {
		for key, flagName := range flagBindings {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := viperCfg.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

// applyDefaults 注册所有 key 的默认值，保证环境变量可以覆盖未出现在配置文件中的 key。
func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("workers", DefaultWorkers())
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("output", DefaultOutput)
	viperCfg.SetDefault("by_file", DefaultByFile)
	viperCfg.SetDefault("exclude_dirs", []string{})
	viperCfg.SetDefault("hidden", DefaultHidden)
	viperCfg.SetDefault("skip_vendor", DefaultSkipVendor)
	viperCfg.SetDefault("max_file_size", DefaultMaxFileSize)
	viperCfg.SetDefault("no_color", DefaultNoColor)
	viperCfg.SetDefault("log.level", DefaultLogLevel)
}
