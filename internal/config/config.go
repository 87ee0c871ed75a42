// Package config 负责 goloc 配置的加载、合并与校验。
// 优先级从低到高：默认值、配置文件、GOLOC_* 环境变量、命令行参数。
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"goloc/internal/languages"
)

// 配置校验错误，便于调用方使用 errors.Is 判断。
var (
	ErrInvalidWorkers     = errors.New("workers must be greater than 0")
	ErrInvalidFormat      = errors.New("unsupported format, allowed values: table, json, yaml, prometheus")
	ErrInvalidMaxFileSize = errors.New("invalid max file size")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrDuplicateLanguage  = errors.New("duplicate custom language")
)

// 支持的输出格式。
const (
	FormatTable      = "table"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatPrometheus = "prometheus"
)

// 默认配置值。
const (
	DefaultFormat      = FormatTable
	DefaultOutput      = ""
	DefaultByFile      = false
	DefaultHidden      = false
	DefaultSkipVendor  = false
	DefaultMaxFileSize = ""
	DefaultNoColor     = false
	DefaultLogLevel    = "info"
)

// DefaultWorkers 返回默认并发 worker 数量，等于 CPU 核数。
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Config 是一次 goloc 运行的全部配置。
type Config struct {
	Workers     int      `mapstructure:"workers"`
	Format      string   `mapstructure:"format"`
	Output      string   `mapstructure:"output"`
	ByFile      bool     `mapstructure:"by_file"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
	Hidden      bool     `mapstructure:"hidden"`
	SkipVendor  bool     `mapstructure:"skip_vendor"`
	MaxFileSize string   `mapstructure:"max_file_size"`
	NoColor     bool     `mapstructure:"no_color"`

	Log       LogConfig              `mapstructure:"log"`
	Languages []languages.Definition `mapstructure:"languages"`

	// MaxFileSizeBytes 由 Validate 从 MaxFileSize 解析得到，0 表示不限制。
	MaxFileSizeBytes int64 `mapstructure:"-"`
}

// LogConfig 是日志相关配置。
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Validate 校验配置并填充派生字段。
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML, FormatPrometheus:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	c.MaxFileSizeBytes = 0
	if size := strings.TrimSpace(c.MaxFileSize); size != "" && size != "0" {
		parsed, err := humanize.ParseBytes(size)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidMaxFileSize, size, err)
		}
		if parsed > math.MaxInt64 {
			return fmt.Errorf("%w: %q exceeds %d bytes", ErrInvalidMaxFileSize, size, int64(math.MaxInt64))
		}
		c.MaxFileSizeBytes = int64(parsed)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	seen := make(map[string]struct{}, len(c.Languages))
	for _, definition := range c.Languages {
		name := strings.TrimSpace(definition.Name)
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateLanguage, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Profiles 根据配置中声明的自定义语言构建 Profile。
func (c *Config) Profiles() ([]*languages.Profile, error) {
	profiles := make([]*languages.Profile, 0, len(c.Languages))
	for _, definition := range c.Languages {
		profile, err := languages.NewProfile(definition)
		if err != nil {
			return nil, fmt.Errorf("custom language: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
