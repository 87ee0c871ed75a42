// Package languages 提供语言注释语法注册、逐行分类状态机与单文件分析。
package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name          string
	Extensions    []string
	LineComments  []string
	BlockComments []BlockComment
}

// Registry 管理语言 Profile 注册与后缀映射。
// 进程启动时构建一次，之后只读，可以被多个 worker 无锁并发读取。
type Registry struct {
	profiles      []*Profile
	profileByExt  map[string]*Profile
	profileByName map[string]*Profile
}

// NewRegistry 创建并注册所有内置语言，extra 为配置文件中的自定义语言。
//
// 约束说明：
// - 自定义语言与内置语言同名时替换内置语言
// - 同一后缀被多个语言声明时，后注册者生效
// - extra 之间不允许重名，由调用方（配置校验）保证
func NewRegistry(extra ...*Profile) *Registry {
	overridden := make(map[string]struct{}, len(extra))
	for _, profile := range extra {
		overridden[profile.Name()] = struct{}{}
	}

	profiles := make([]*Profile, 0, len(builtinDefinitions)+len(extra))
	for _, profile := range builtinProfiles() {
		if _, ok := overridden[profile.Name()]; ok {
			continue
		}
		profiles = append(profiles, profile)
	}
	profiles = append(profiles, extra...)

	registry := &Registry{
		profiles:      profiles,
		profileByExt:  make(map[string]*Profile),
		profileByName: make(map[string]*Profile, len(profiles)),
	}

	for _, profile := range profiles {
		registry.profileByName[profile.Name()] = profile
		for _, ext := range profile.extensions {
			registry.profileByExt[ext] = profile
		}
	}

	return registry
}

// Resolve 根据文件后缀（不区分大小写）查找语言 Profile。
// 同一路径多次查询返回同一个 Profile。
func (r *Registry) Resolve(path string) (*Profile, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	profile, ok := r.profileByExt[ext]
	return profile, ok
}

// Languages 返回已注册语言清单，按名称排序。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		result = append(result, LanguageDescriptor{
			Name:          profile.Name(),
			Extensions:    r.ExtensionsForLanguage(profile.Name()),
			LineComments:  profile.LineComments(),
			BlockComments: profile.BlockComments(),
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回当前实际映射到指定语言的全部后缀。
// 被其他语言覆盖的后缀不会出现在结果中。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	profile, ok := r.profileByName[language]
	if !ok {
		return nil
	}

	extensions := make([]string, 0, len(profile.extensions))
	for _, ext := range profile.extensions {
		if r.profileByExt[ext] == profile {
			extensions = append(extensions, ext)
		}
	}
	sort.Strings(extensions)
	return extensions
}
