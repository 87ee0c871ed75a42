package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"goloc/internal/config"
	"goloc/internal/report"
	"goloc/internal/scanner"
)

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	goloc scan .
//	goloc scan ./project --format json --output result.json
//	goloc scan ./project --exclude-dirs "testdata,**/generated" --by-file
func newScanCmd() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录或文件并输出代码度量信息",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}

	addScanFlags(scanCmd.Flags())

	return scanCmd
}

// addScanFlags 注册扫描相关参数，根命令与 scan 子命令共用。
func addScanFlags(flags *pflag.FlagSet) {
	flags.String(flagFormat, config.DefaultFormat, "输出格式: table, json, yaml 或 prometheus")
	flags.StringP(flagOutput, "o", config.DefaultOutput, "导出文件路径，为空时输出到 stdout")
	flags.Int(flagWorkers, config.DefaultWorkers(), "并发 worker 数量")
	flags.Bool(flagByFile, config.DefaultByFile, "同时输出逐文件统计")
	flags.StringSlice(flagExcludeDirs, nil, "排除目录，支持 glob，逗号分隔")
	flags.Bool(flagHidden, config.DefaultHidden, "包含隐藏文件与目录")
	flags.Bool(flagSkipVendor, config.DefaultSkipVendor, "按 enry 的 vendor 规则额外跳过第三方文件")
	flags.String(flagMaxFileSize, config.DefaultMaxFileSize, "跳过超过该大小的文件，例如 10MB")
}

// runScan 执行扫描并按配置输出结果。
func runScan(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	cfg := env.cfg

	service, err := scanner.NewService(env.registry, scanner.Options{
		Workers:     cfg.Workers,
		ByFile:      cfg.ByFile,
		ExcludeDirs: cfg.ExcludeDirs,
		Hidden:      cfg.Hidden,
		SkipVendor:  cfg.SkipVendor,
		MaxFileSize: cfg.MaxFileSizeBytes,
	}, env.logger)
	if err != nil {
		return err
	}

	startedAt := time.Now()

	result, err := service.ScanPath(cmd.Context(), targetPath(args))
	if errors.Is(err, scanner.ErrNoSupportedFiles) {
		env.logger.Info("No supported files found!")
		return nil
	}
	if err != nil {
		return err
	}

	env.logger.Infof("Analysis completed in %.2f seconds", time.Since(startedAt).Seconds())

	if cfg.Output != "" {
		if err := report.WriteFile(cfg.Output, cfg.Format, result); err != nil {
			return err
		}
		env.logger.Infof("Report exported to %s", cfg.Output)
		return nil
	}

	return report.Print(cmd.OutOrStdout(), cfg.Format, result)
}
