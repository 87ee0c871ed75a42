// Package cmd 提供 goloc 的命令行入口与子命令编排。
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(ctx context.Context, version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd 创建根命令并注册全部子命令。
// 根命令本身等价于 scan，省略路径时扫描当前目录。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goloc [path]",
		Short: "按语言统计代码行、注释行与空行",
		Long: "goloc 基于可配置的语言注释语法逐行分类，\n" +
			"并发扫描目录树，输出 table/json/yaml/prometheus 格式的统计结果。",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScan,
	}

	persistent := rootCmd.PersistentFlags()
	persistent.String(flagConfig, "", "配置文件路径，默认查找 ./.goloc.yaml 与 $HOME/.goloc.yaml")
	persistent.String(flagLogLevel, "info", "日志级别: debug, info, warn, error")
	persistent.Bool(flagNoColor, false, "禁用彩色输出")

	addScanFlags(rootCmd.Flags())

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd())
	rootCmd.AddCommand(newScanCmd())

	return rootCmd
}
