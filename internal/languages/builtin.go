package languages

var (
	cStyleLine  = []string{"//"}
	cStyleBlock = []BlockComment{{Start: "/*", End: "*/"}}
	htmlBlock   = []BlockComment{{Start: "<!--", End: "-->"}}
)

// builtinDefinitions 是内置语言表。
//
// Python 的三引号被当作块注释处理：多行普通字符串也会被计为注释，
// 这是刻意保留的近似做法，不做真正的字符串字面量解析。
var builtinDefinitions = []Definition{
	{Name: "Rust", Extensions: []string{"rs"}, LineComments: cStyleLine, BlockComments: cStyleBlock},
	{
		Name:          "C/C++",
		Extensions:    []string{"c", "cpp", "cc", "cxx", "h", "hpp"},
		LineComments:  cStyleLine,
		BlockComments: cStyleBlock,
	},
	{
		Name:         "Python",
		Extensions:   []string{"py", "pyw"},
		LineComments: []string{"#"},
		BlockComments: []BlockComment{
			{Start: `"""`, End: `"""`},
			{Start: "'''", End: "'''"},
		},
	},
	{Name: "JavaScript", Extensions: []string{"js", "jsx", "mjs"}, LineComments: cStyleLine, BlockComments: cStyleBlock},
	{Name: "TypeScript", Extensions: []string{"ts", "tsx"}, LineComments: cStyleLine, BlockComments: cStyleBlock},
	{Name: "Java", Extensions: []string{"java"}, LineComments: cStyleLine, BlockComments: cStyleBlock},
	{Name: "C#", Extensions: []string{"cs"}, LineComments: cStyleLine, BlockComments: cStyleBlock},
	{Name: "Go", Extensions: []string{"go"}, LineComments: cStyleLine, BlockComments: cStyleBlock},
	{Name: "Shell", Extensions: []string{"sh", "bash", "zsh"}, LineComments: []string{"#"}},
	{
		Name:          "PowerShell",
		Extensions:    []string{"ps1", "psm1", "psd1"},
		LineComments:  []string{"#"},
		BlockComments: []BlockComment{{Start: "<#", End: "#>"}},
	},
	{Name: "HTML", Extensions: []string{"html", "htm", "xml"}, BlockComments: htmlBlock},
	{Name: "CSS", Extensions: []string{"css"}, BlockComments: cStyleBlock},
	{Name: "SQL", Extensions: []string{"sql"}, LineComments: []string{"--"}, BlockComments: cStyleBlock},
	{
		Name:          "Ruby",
		Extensions:    []string{"rb"},
		LineComments:  []string{"#"},
		BlockComments: []BlockComment{{Start: "=begin", End: "=end"}},
	},
	{Name: "PHP", Extensions: []string{"php"}, LineComments: []string{"//", "#"}, BlockComments: cStyleBlock},
	{Name: "YAML", Extensions: []string{"yaml", "yml"}, LineComments: []string{"#"}},
	{Name: "JSON", Extensions: []string{"json"}},
	{Name: "Markdown", Extensions: []string{"md", "markdown"}, BlockComments: htmlBlock},
	{
		Name:          "Lua",
		Extensions:    []string{"lua"},
		LineComments:  []string{"--"},
		BlockComments: []BlockComment{{Start: "--[[", End: "]]"}},
	},
}

// builtinProfiles 返回内置语言 Profile 列表。
func builtinProfiles() []*Profile {
	profiles := make([]*Profile, 0, len(builtinDefinitions))
	for _, definition := range builtinDefinitions {
		profiles = append(profiles, mustProfile(definition))
	}
	return profiles
}
