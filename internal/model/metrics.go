// Package model 定义 goloc 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

import "sort"

// FileStats 表示一组行级统计值，既可以描述单个文件，也可以描述任意多个文件的合计。
//
// 注意：
// - 单个成功分析的文件 Files 固定为 1，且 Blank+Comment+Code 等于物理行数
// - 每一行只归入 Blank/Comment/Code 之一
// - 零值即加法单位元，Add 满足交换律与结合律，因此并发汇总的顺序不影响结果
type FileStats struct {
	Files   int64 `json:"files" yaml:"files"`
	Blank   int64 `json:"blank" yaml:"blank"`
	Comment int64 `json:"comment" yaml:"comment"`
	Code    int64 `json:"code" yaml:"code"`
}

// Add 返回两个统计值逐项相加后的结果，不修改接收者。
func (s FileStats) Add(other FileStats) FileStats {
	return FileStats{
		Files:   s.Files + other.Files,
		Blank:   s.Blank + other.Blank,
		Comment: s.Comment + other.Comment,
		Code:    s.Code + other.Code,
	}
}

// Lines 返回已分类的物理行总数。
func (s FileStats) Lines() int64 {
	return s.Blank + s.Comment + s.Code
}

// AggregateStats 是语言名到合计统计的映射。
type AggregateStats map[string]FileStats

// Merge 将一个文件（或一组文件）的统计值累加到指定语言下。
func (a AggregateStats) Merge(language string, stats FileStats) {
	a[language] = a[language].Add(stats)
}

// Total 返回所有语言的合计。
func (a AggregateStats) Total() FileStats {
	var total FileStats
	for _, stats := range a {
		total = total.Add(stats)
	}
	return total
}

// Sorted 按代码行数降序返回语言级汇总。
// 代码行相同的语言按名称排序，保证输出稳定。
func (a AggregateStats) Sorted() []LanguageStats {
	result := make([]LanguageStats, 0, len(a))
	for language, stats := range a {
		result = append(result, LanguageStats{Language: language, FileStats: stats})
	}

	sort.Slice(result, func(i int, j int) bool {
		if result[i].Code != result[j].Code {
			return result[i].Code > result[j].Code
		}
		return result[i].Language < result[j].Language
	})

	return result
}

// LanguageStats 表示某个语言的聚合结果。
type LanguageStats struct {
	Language   string   `json:"language" yaml:"language"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	FileStats  `yaml:",inline"`
}

// FileResult 表示单文件扫描结果，仅在开启 by-file 时收集。
type FileResult struct {
	Path     string    `json:"path" yaml:"path"`
	Language string    `json:"language" yaml:"language"`
	Stats    FileStats `json:"stats" yaml:"stats"`
}

// ScanError 记录单文件扫描失败信息。
// 失败文件不计入任何统计，也不会中断全量扫描。
type ScanError struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// ScanResult 是一次扫描的完整输出模型。
// 包含语言级汇总、全局总计、可选的文件级明细和错误列表。
type ScanResult struct {
	ScannedPath string          `json:"scanned_path" yaml:"scanned_path"`
	Languages   []LanguageStats `json:"languages" yaml:"languages"`
	Total       FileStats       `json:"total" yaml:"total"`
	Files       []FileResult    `json:"files,omitempty" yaml:"files,omitempty"`
	Errors      []ScanError     `json:"errors" yaml:"errors"`
}
