// Package scanner 提供目录遍历与并发聚合调度能力。
// 该层负责路径过滤、任务生成、并发执行和结果汇总，不负责逐行分类细节。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"goloc/internal/languages"
	"goloc/internal/logging"
	"goloc/internal/model"
)

// 扫描错误。
var (
	// ErrNoSupportedFiles 表示目标路径下没有任何可识别语言的文件，不属于失败。
	ErrNoSupportedFiles = errors.New("no supported files found")
	// ErrUnsupportedFile 表示用户直接指定的单个文件后缀无法识别。
	ErrUnsupportedFile = errors.New("unsupported file extension")
	// ErrInvalidExcludePattern 表示 --exclude-dirs 中存在非法 glob 模式。
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")
)

// Options 是扫描行为的可配置项。
type Options struct {
	Workers     int
	ByFile      bool
	ExcludeDirs []string
	Hidden      bool
	SkipVendor  bool
	MaxFileSize int64
}

// Service 是扫描服务对象。
type Service struct {
	registry *languages.Registry
	options  Options
	logger   *logrus.Entry
}

// NewService 创建扫描服务。logger 为 nil 时丢弃日志。
func NewService(registry *languages.Registry, options Options, logger *logrus.Entry) (*Service, error) {
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	for _, pattern := range options.ExcludeDirs {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExcludePattern, pattern)
		}
	}

	return &Service{
		registry: registry,
		options:  options,
		logger:   logger,
	}, nil
}

// ScanPath 扫描目录或单文件。
// 没有可识别文件时返回 ErrNoSupportedFiles；单文件读取失败只体现在 Errors 中。
func (s *Service) ScanPath(ctx context.Context, targetPath string) (model.ScanResult, error) {
	var result model.ScanResult

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("scan path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}

	result.ScannedPath = absoluteTarget

	var tasks []Task
	if info.IsDir() {
		tasks, err = s.enqueueDirectoryTasks(ctx, absoluteTarget)
	} else {
		tasks, err = s.enqueueSingleFileTask(absoluteTarget)
	}
	if err != nil {
		return result, err
	}
	if len(tasks) == 0 {
		return result, ErrNoSupportedFiles
	}

	pipeline := NewPipeline(s.options.Workers, s.options.ByFile, s.logger)
	outcome, err := pipeline.Aggregate(ctx, tasks)
	if err != nil {
		return result, err
	}

	if len(outcome.Failures) > 0 {
		s.logger.Debugf("Skipped %d unreadable files", len(outcome.Failures))
	}

	s.buildSummaries(&result, outcome)
	return result, nil
}

// buildSummaries 计算语言级汇总和总计信息。
func (s *Service) buildSummaries(result *model.ScanResult, outcome Outcome) {
	result.Languages = outcome.Stats.Sorted()
	for i := range result.Languages {
		result.Languages[i].Extensions = s.registry.ExtensionsForLanguage(result.Languages[i].Language)
	}

	result.Total = outcome.Stats.Total()
	result.Files = outcome.Files
	result.Errors = outcome.Failures
}
