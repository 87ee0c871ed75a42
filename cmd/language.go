package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"goloc/internal/languages"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示当前已注册的语言（含配置文件中的自定义语言）、后缀以及注释语法。
func newLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已注册语言、后缀及注释语法",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.Style().Options.DrawBorder = false
			tbl.Style().Options.SeparateColumns = false
			tbl.AppendHeader(table.Row{"Language", "Extensions", "Line Comments", "Block Comments"})

			for _, item := range env.registry.Languages() {
				tbl.AppendRow(table.Row{
					item.Name,
					strings.Join(item.Extensions, ", "),
					joinTokens(item.LineComments),
					joinBlocks(item.BlockComments),
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return err
		},
	}
}

func joinTokens(tokens []string) string {
	if len(tokens) == 0 {
		return "-"
	}
	return strings.Join(tokens, " ")
}

func joinBlocks(blocks []languages.BlockComment) string {
	if len(blocks) == 0 {
		return "-"
	}

	pairs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		pairs = append(pairs, block.Start+" "+block.End)
	}
	return strings.Join(pairs, ", ")
}
