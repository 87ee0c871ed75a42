package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"goloc/internal/model"
)

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintYAML 把扫描结果按 YAML 输出到任意 writer。
func PrintYAML(writer io.Writer, result model.ScanResult) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}

// Print 按格式名输出扫描结果。
func Print(writer io.Writer, format string, result model.ScanResult) error {
	switch format {
	case "table":
		return PrintTable(writer, result)
	case "json":
		return PrintJSON(writer, result)
	case "yaml":
		return PrintYAML(writer, result)
	case "prometheus":
		return PrintPrometheus(writer, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile 将结果按格式导出到指定路径。
// 如果目录不存在会自动创建；prometheus 格式使用原子替换写入，便于 textfile collector 读取。
func WriteFile(path string, format string, result model.ScanResult) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if format == "prometheus" {
		return WritePrometheusFile(path, result)
	}

	var buffer bytes.Buffer
	if err := Print(&buffer, format, result); err != nil {
		return err
	}

	if writeErr := os.WriteFile(path, buffer.Bytes(), 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
