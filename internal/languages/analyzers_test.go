package languages

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goloc/internal/model"
)

// analyzeText 是测试辅助函数，用于快速按某个语言分析文本并返回统计结果。
func analyzeText(t *testing.T, language string, content string) model.FileStats {
	t.Helper()

	profile, ok := NewRegistry().Resolve("x" + language)
	if !ok {
		t.Fatalf("no profile for %s", language)
	}

	stats, err := Analyze(strings.NewReader(content), profile)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	return stats
}

// assertLineCoverage 验证 blank + comment + code 等于物理行数。
func assertLineCoverage(t *testing.T, stats model.FileStats, physicalLines int64) {
	t.Helper()

	if stats.Files != 1 {
		t.Fatalf("expected files=1, got %d", stats.Files)
	}
	if stats.Lines() != physicalLines {
		t.Fatalf("expected %d classified lines, got %d (%+v)", physicalLines, stats.Lines(), stats)
	}
}

// TestGoInlineCodeAndComment 验证行尾注释的行计为代码。
func TestGoInlineCodeAndComment(t *testing.T) {
	content := "package main\n" +
		"\n" +
		"// main 入口\n" +
		"func main() {\n" +
		"    x := 1 // comment\n" +
		"}\n"

	stats := analyzeText(t, ".go", content)

	assertLineCoverage(t, stats, 6)
	if stats.Code != 4 || stats.Comment != 1 || stats.Blank != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestCMultiLineBlockComment 验证跨行块注释以及注释闭合后的代码。
func TestCMultiLineBlockComment(t *testing.T) {
	content := "/* start\n" +
		"still comment\n" +
		"end */ int y;\n"

	stats := analyzeText(t, ".c", content)

	assertLineCoverage(t, stats, 3)
	if stats.Code != 1 || stats.Comment != 2 || stats.Blank != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestRubyBeginEndComment 验证 Ruby 的 =begin/=end 块注释。
func TestRubyBeginEndComment(t *testing.T) {
	content := "=begin\n" +
		"comment body\n" +
		"=end\n" +
		"puts \"ok\"\n"

	stats := analyzeText(t, ".rb", content)

	assertLineCoverage(t, stats, 4)
	if stats.Code != 1 || stats.Comment != 3 || stats.Blank != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestPythonTripleQuoteHeuristic 验证三引号按块注释处理的近似行为。
func TestPythonTripleQuoteHeuristic(t *testing.T) {
	content := "def f():\n" +
		"    \"\"\"\n" +
		"    docstring\n" +
		"    \"\"\"\n" +
		"    # real comment\n" +
		"    return 1\n"

	stats := analyzeText(t, ".py", content)

	assertLineCoverage(t, stats, 6)
	if stats.Code != 2 || stats.Comment != 4 || stats.Blank != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestSQLLineAndBlockComment 验证 SQL 的 -- 行注释与块注释。
func TestSQLLineAndBlockComment(t *testing.T) {
	content := "SELECT 1; /* trailing */\n" +
		"-- line comment\n" +
		"/* outer\n" +
		"*/\n"

	stats := analyzeText(t, ".sql", content)

	assertLineCoverage(t, stats, 4)
	if stats.Code != 1 || stats.Comment != 3 || stats.Blank != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestAnalyzeLineEndings 验证 CRLF 与末行无换行符的情况。
func TestAnalyzeLineEndings(t *testing.T) {
	content := "x := 1\r\n" +
		"\r\n" +
		"// tail"

	stats := analyzeText(t, ".go", content)

	assertLineCoverage(t, stats, 3)
	if stats.Code != 1 || stats.Comment != 1 || stats.Blank != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestAnalyzeEmptyInput 验证空文件仍计为一个文件且没有任何行。
func TestAnalyzeEmptyInput(t *testing.T) {
	stats := analyzeText(t, ".go", "")

	if stats != (model.FileStats{Files: 1}) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestAnalyzeUnterminatedBlockComment 验证文件在块注释中结束时剩余行均计为注释。
func TestAnalyzeUnterminatedBlockComment(t *testing.T) {
	content := "int a;\n" +
		"/* never closed\n" +
		"int b;\n" +
		"\n"

	stats := analyzeText(t, ".java", content)

	assertLineCoverage(t, stats, 4)
	if stats.Code != 1 || stats.Comment != 3 || stats.Blank != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestAnalyzeInvalidEncoding 验证非 UTF-8 内容返回错误且不产出部分统计。
func TestAnalyzeInvalidEncoding(t *testing.T) {
	profile, _ := NewRegistry().Resolve("x.go")

	stats, err := Analyze(strings.NewReader("ok := 1\n\xff\xfe\n"), profile)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected invalid encoding error, got %v", err)
	}
	if stats != (model.FileStats{}) {
		t.Fatalf("expected zero stats on failure, got %+v", stats)
	}
}

// TestAnalyzeFileMissing 验证打开失败返回 ReadError。
func TestAnalyzeFileMissing(t *testing.T) {
	profile, _ := NewRegistry().Resolve("x.go")
	missing := filepath.Join(t.TempDir(), "missing.go")

	stats, err := AnalyzeFile(missing, profile)

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %v", err)
	}
	if readErr.Path != missing {
		t.Fatalf("unexpected error path: %s", readErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if stats != (model.FileStats{}) {
		t.Fatalf("expected zero stats on failure, got %+v", stats)
	}
}

// TestAnalyzeFileReadsDisk 验证从磁盘读取文件的完整流程。
func TestAnalyzeFileReadsDisk(t *testing.T) {
	profile, _ := NewRegistry().Resolve("x.sh")
	path := filepath.Join(t.TempDir(), "run.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n\necho hi # greet\n"), 0o644); err != nil {
		t.Fatalf("write fixture failed: %v", err)
	}

	stats, err := AnalyzeFile(path, profile)
	if err != nil {
		t.Fatalf("analyze file failed: %v", err)
	}

	assertLineCoverage(t, stats, 3)
	if stats.Code != 1 || stats.Comment != 1 || stats.Blank != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
