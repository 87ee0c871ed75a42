package languages

import (
	"errors"
	"fmt"
	"strings"
)

// 语言定义校验错误。
var (
	ErrEmptyName           = errors.New("language name is empty")
	ErrNoExtensions        = errors.New("language has no extensions")
	ErrEmptyToken          = errors.New("comment token is empty")
	ErrDuplicateBlockStart = errors.New("duplicate block comment start token")
)

// BlockComment 描述一对块注释起止标记，例如 /* 与 */。
type BlockComment struct {
	Start string `mapstructure:"start" json:"start" yaml:"start"`
	End   string `mapstructure:"end" json:"end" yaml:"end"`
}

// Definition 是语言注释语法的原始描述。
// 内置语言表和配置文件中的自定义语言都使用该结构，经 NewProfile 校验后才能使用。
type Definition struct {
	Name          string         `mapstructure:"name"`
	Extensions    []string       `mapstructure:"extensions"`
	LineComments  []string       `mapstructure:"line_comments"`
	BlockComments []BlockComment `mapstructure:"block_comments"`
}

// Profile 是单个语言校验后的注释语法，创建后不可变。
// 同一个 Profile 会被所有并发分析任务共享，因此只暴露返回副本的读取方法。
type Profile struct {
	name          string
	extensions    []string
	lineComments  []string
	blockComments []BlockComment
}

// NewProfile 校验语言定义并创建 Profile。
//
// 约束说明：
// - 名称和至少一个后缀必填，后缀统一为小写并补齐前导点号
// - 所有注释标记不能为空串，否则扫描循环无法前进
// - 同一语言内块注释起始标记不能重复
// - 行注释、块注释列表都可以为空
func NewProfile(definition Definition) (*Profile, error) {
	name := strings.TrimSpace(definition.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	extensions := make([]string, 0, len(definition.Extensions))
	for _, ext := range definition.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, ext)
	}
	if len(extensions) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoExtensions)
	}

	for _, token := range definition.LineComments {
		if token == "" {
			return nil, fmt.Errorf("%s line comment: %w", name, ErrEmptyToken)
		}
	}

	seenStarts := make(map[string]struct{}, len(definition.BlockComments))
	for _, pair := range definition.BlockComments {
		if pair.Start == "" || pair.End == "" {
			return nil, fmt.Errorf("%s block comment: %w", name, ErrEmptyToken)
		}
		if _, ok := seenStarts[pair.Start]; ok {
			return nil, fmt.Errorf("%s %q: %w", name, pair.Start, ErrDuplicateBlockStart)
		}
		seenStarts[pair.Start] = struct{}{}
	}

	return &Profile{
		name:          name,
		extensions:    extensions,
		lineComments:  append([]string(nil), definition.LineComments...),
		blockComments: append([]BlockComment(nil), definition.BlockComments...),
	}, nil
}

// mustProfile 用于内置语言表，定义错误属于编码错误，直接 panic。
func mustProfile(definition Definition) *Profile {
	profile, err := NewProfile(definition)
	if err != nil {
		panic(err)
	}
	return profile
}

// Name 返回语言名称。
func (p *Profile) Name() string {
	return p.name
}

// Extensions 返回后缀列表副本（小写，含点号）。
func (p *Profile) Extensions() []string {
	return append([]string(nil), p.extensions...)
}

// LineComments 返回行注释标记副本。
func (p *Profile) LineComments() []string {
	return append([]string(nil), p.lineComments...)
}

// BlockComments 返回块注释标记副本。
func (p *Profile) BlockComments() []BlockComment {
	return append([]BlockComment(nil), p.blockComments...)
}

// firstBlockStart 返回 text 中最早出现的块注释起始位置及对应标记对。
// 多个起始标记位置相同时，保留定义顺序中靠前的一对。
func (p *Profile) firstBlockStart(text string) (int, BlockComment) {
	position := -1
	var matched BlockComment
	for _, pair := range p.blockComments {
		idx := strings.Index(text, pair.Start)
		if idx >= 0 && (position < 0 || idx < position) {
			position = idx
			matched = pair
		}
	}
	return position, matched
}

// firstLineComment 返回 text 中最早出现的行注释位置，未找到返回 -1。
func (p *Profile) firstLineComment(text string) int {
	position := -1
	for _, token := range p.lineComments {
		idx := strings.Index(text, token)
		if idx >= 0 && (position < 0 || idx < position) {
			position = idx
		}
	}
	return position
}
