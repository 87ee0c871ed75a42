package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/src-d/enry/v2"

	"goloc/internal/languages"
)

// defaultSkipDirs 是默认跳过的构建产物、依赖与缓存目录，匹配时不区分大小写。
var defaultSkipDirs = map[string]struct{}{
	"target":        {},
	"node_modules":  {},
	".git":          {},
	".svn":          {},
	".hg":           {},
	"build":         {},
	"dist":          {},
	"out":           {},
	"bin":           {},
	"obj":           {},
	".vs":           {},
	".vscode":       {},
	"__pycache__":   {},
	".pytest_cache": {},
	".mypy_cache":   {},
	"vendor":        {},
	"deps":          {},
	".idea":         {},
	".gradle":       {},
}

// scanLogInterval 控制遍历阶段进度日志的频率。
const scanLogInterval = 1000

// Task 表示一个待分析文件任务。
type Task struct {
	Path        string
	DisplayPath string
	Profile     *languages.Profile
}

// enqueueDirectoryTasks 遍历目录，过滤后把可识别语言文件加入任务列表。
//
// 过滤顺序：默认跳过目录、--exclude-dirs 模式、隐藏文件/目录、vendor 文件（仅 --skip-vendor）、文件大小上限。
// 根目录以下的遍历错误只记录日志并跳过，不中断整体扫描。
func (s *Service) enqueueDirectoryTasks(ctx context.Context, root string) ([]Task, error) {
	var tasks []Task
	scanned := 0

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.WithError(walkErr).WithField("path", path).Debug("skipping unreadable entry")
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)
		name := entry.Name()

		if entry.IsDir() {
			if path != root && s.skipDirectory(relativePath, name) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		scanned++
		if scanned%scanLogInterval == 0 {
			s.logger.Debugf("Scanned %d files...", scanned)
		}

		if !s.options.Hidden && enry.IsDotFile(name) {
			return nil
		}
		// enry 的 vendor 规则会命中 cache/、external/ 等普通目录，只在显式开启时使用。
		if s.options.SkipVendor && enry.IsVendor(relativePath) {
			return nil
		}

		profile, ok := s.registry.Resolve(name)
		if !ok {
			return nil
		}

		if s.options.MaxFileSize > 0 {
			info, infoErr := entry.Info()
			if infoErr != nil {
				s.logger.WithError(infoErr).WithField("path", relativePath).Debug("skipping file without stat")
				return nil
			}
			if info.Size() > s.options.MaxFileSize {
				s.logger.WithField("path", relativePath).Debug("skipping file above size limit")
				return nil
			}
		}

		tasks = append(tasks, Task{
			Path:        path,
			DisplayPath: relativePath,
			Profile:     profile,
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	s.logger.Infof("Found %d files to analyze", len(tasks))
	return tasks, nil
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
func (s *Service) enqueueSingleFileTask(filePath string) ([]Task, error) {
	profile, ok := s.registry.Resolve(filePath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Ext(filePath))
	}

	return []Task{{
		Path:        filePath,
		DisplayPath: filepath.Base(filePath),
		Profile:     profile,
	}}, nil
}

// skipDirectory 判断目录是否需要整体跳过。
func (s *Service) skipDirectory(relativePath string, name string) bool {
	if _, ok := defaultSkipDirs[strings.ToLower(name)]; ok {
		return true
	}

	if !s.options.Hidden && enry.IsDotFile(name) {
		return true
	}

	for _, pattern := range s.options.ExcludeDirs {
		if matchExclude(pattern, relativePath, name) {
			return true
		}
	}

	return false
}

// matchExclude 用 doublestar 语法匹配排除模式。
// 不含斜杠的模式匹配目录名，含斜杠的模式匹配相对根目录的路径。
func matchExclude(pattern string, relativePath string, name string) bool {
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return false
	}

	if !strings.Contains(pattern, "/") {
		matched, _ := doublestar.Match(pattern, name)
		return matched
	}

	matched, _ := doublestar.Match(strings.TrimPrefix(pattern, "./"), relativePath)
	return matched
}
