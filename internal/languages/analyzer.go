package languages

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"goloc/internal/model"
)

// ErrInvalidEncoding 表示文件中存在非 UTF-8 编码的行。
var ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

// ReadError 表示单文件打开、读取或解码失败。
// 出现该错误时不会产出任何部分统计。
type ReadError struct {
	Path string
	Err  error
}

// Error 实现 error 接口。
func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap 返回底层错误，便于 errors.Is 判断。
func (e *ReadError) Unwrap() error {
	return e.Err
}

// normalizeLine 用于去除每行末尾的换行符。
// 该函数适配 Windows 的 \r\n 与 Unix 的 \n。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// Analyze 流式读取 reader 并逐行分类，返回 Files 为 1 的统计结果。
// 状态机状态在本次调用内新建，调用结束即丢弃。
func Analyze(reader io.Reader, profile *Profile) (model.FileStats, error) {
	stats := model.FileStats{Files: 1}
	var state ClassifierState

	bufferedReader := bufio.NewReader(reader)
	lineNumber := 0

	for {
		line, err := bufferedReader.ReadString('\n')
		// 完整 EOF（无残余字符）直接结束。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return model.FileStats{}, err
		}

		lineNumber++
		currentLine := normalizeLine(line)
		if !utf8.ValidString(currentLine) {
			return model.FileStats{}, fmt.Errorf("line %d: %w", lineNumber, ErrInvalidEncoding)
		}

		switch Classify(currentLine, &state, profile) {
		case Blank:
			stats.Blank++
		case Comment:
			stats.Comment++
		case Code:
			stats.Code++
		}

		// EOF 但仍有本行内容时，需要在本轮统计后再退出。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return stats, nil
}

// AnalyzeFile 打开并分析单个文件。
// 任何打开、读取或关闭失败都返回 *ReadError，且不返回部分统计。
func AnalyzeFile(path string, profile *Profile) (stats model.FileStats, err error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return model.FileStats{}, &ReadError{Path: path, Err: openErr}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			stats = model.FileStats{}
			err = &ReadError{Path: path, Err: closeErr}
		}
	}()

	stats, err = Analyze(file, profile)
	if err != nil {
		return model.FileStats{}, &ReadError{Path: path, Err: err}
	}
	return stats, nil
}
