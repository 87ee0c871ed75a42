package languages

import "strings"

// LineKind 是单行分类结果。
type LineKind int

// 行分类取值。
const (
	Blank LineKind = iota
	Comment
	Code
)

// String 返回分类名称。
func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// ClassifierState 是跨行保留的状态机状态：要么不在块注释中，
// 要么处于块注释中并等待结束标记 blockEnd。
// 每个文件分析开始时新建，只归属一次文件分析，绝不跨文件或跨 goroutine 共享。
type ClassifierState struct {
	blockEnd string
	inBlock  bool
}

// InBlockComment 报告当前是否处于未闭合的块注释中。
func (s *ClassifierState) InBlockComment() bool {
	return s.inBlock
}

// Classify 对单行文本分类，并更新跨行状态。
//
// 扫描规则（同一行内可多次循环）：
//  1. 处于块注释中时查找结束标记；找不到则整行延续注释，找到则跳过结束标记继续扫描
//  2. 行首不在块注释中且整行只有空白时判定为 Blank（只在首轮判断一次）
//  3. 同时查找最早的块注释起始和最早的行注释标记：
//     块注释起始位置不晚于行注释（相同位置块注释优先）时进入块注释并继续扫描；
//     否则遇到行注释立即结束本行；都没有时剩余文本按代码处理
//
// 标记之前出现的非空白文本都会把本行标记为 Code。
// 本行没有代码但出现过注释标记时判定为 Comment，任何非空行都不会被丢弃。
func Classify(line string, state *ClassifierState, profile *Profile) LineKind {
	if !state.inBlock && strings.TrimSpace(line) == "" {
		return Blank
	}

	remaining := line
	hasCode := false
	hasComment := false

	for {
		if state.inBlock {
			hasComment = true
			end := strings.Index(remaining, state.blockEnd)
			if end < 0 {
				return resolveKind(hasCode, hasComment)
			}
			remaining = remaining[end+len(state.blockEnd):]
			state.inBlock = false
			state.blockEnd = ""
			continue
		}

		blockPos, pair := profile.firstBlockStart(remaining)
		linePos := profile.firstLineComment(remaining)

		switch {
		case blockPos >= 0 && (linePos < 0 || blockPos <= linePos):
			if strings.TrimSpace(remaining[:blockPos]) != "" {
				hasCode = true
			}
			remaining = remaining[blockPos+len(pair.Start):]
			state.inBlock = true
			state.blockEnd = pair.End
		case linePos >= 0:
			if strings.TrimSpace(remaining[:linePos]) != "" {
				hasCode = true
			}
			return resolveKind(hasCode, true)
		default:
			if strings.TrimSpace(remaining) != "" {
				hasCode = true
			}
			return resolveKind(hasCode, hasComment)
		}
	}
}

func resolveKind(hasCode bool, hasComment bool) LineKind {
	if hasCode {
		return Code
	}
	if hasComment {
		return Comment
	}
	return Code
}
