// Package report 提供 goloc 的输出能力。
// 支持 table 控制台格式、JSON、YAML 以及 Prometheus textfile 格式（含文件导出）。
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"goloc/internal/model"
)

// numericColumns 是表格中右对齐的数字列。
var numericColumns = []table.ColumnConfig{
	{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false
	tbl.SetColumnConfigs(numericColumns)
	return tbl
}

func count(value int64) string {
	return humanize.Comma(value)
}

// PrintTable 使用表格展示扫描结果。
// 语言按代码行降序排列，末尾为 SUM 合计行；开启 by-file 时额外输出文件明细。
func PrintTable(writer io.Writer, result model.ScanResult) error {
	if _, err := fmt.Fprintf(writer, "Scanned path: %s\n\n", result.ScannedPath); err != nil {
		return err
	}

	if len(result.Files) > 0 {
		files := newTable()
		files.AppendHeader(table.Row{"File", "Language", "Blank", "Comment", "Code"})
		files.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
		})
		for _, item := range result.Files {
			files.AppendRow(table.Row{
				item.Path,
				item.Language,
				count(item.Stats.Blank),
				count(item.Stats.Comment),
				count(item.Stats.Code),
			})
		}
		if _, err := fmt.Fprintf(writer, "%s\n\n", files.Render()); err != nil {
			return err
		}
	}

	summary := newTable()
	summary.AppendHeader(table.Row{"Language", "Files", "Blank", "Comment", "Code"})
	for _, item := range result.Languages {
		summary.AppendRow(table.Row{
			item.Language,
			count(item.Files),
			count(item.Blank),
			count(item.Comment),
			count(item.Code),
		})
	}
	summary.AppendFooter(table.Row{
		"SUM",
		count(result.Total.Files),
		count(result.Total.Blank),
		count(result.Total.Comment),
		count(result.Total.Code),
	})

	if _, err := fmt.Fprintln(writer, summary.Render()); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintf(writer, "\n%d files skipped (unreadable)\n", len(result.Errors)); err != nil {
			return err
		}
	}

	return nil
}
