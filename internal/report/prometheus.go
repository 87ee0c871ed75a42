package report

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"goloc/internal/model"
)

const (
	metricLines   = "goloc_lines"
	metricFiles   = "goloc_files"
	metricSkipped = "goloc_skipped_files"

	labelLanguage = "language"
	labelKind     = "kind"
)

// newMetricsRegistry 把扫描结果转换为独立的 Prometheus registry。
// 每次调用都新建 registry，避免污染全局默认 registry。
func newMetricsRegistry(result model.ScanResult) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	lines := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricLines,
		Help: "Number of lines per language and kind (blank, comment, code).",
	}, []string{labelLanguage, labelKind})
	files := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricFiles,
		Help: "Number of analyzed files per language.",
	}, []string{labelLanguage})
	skipped := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: metricSkipped,
		Help: "Number of files skipped because they could not be read.",
	})

	for _, collector := range []prometheus.Collector{lines, files, skipped} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	for _, item := range result.Languages {
		lines.WithLabelValues(item.Language, "blank").Set(float64(item.Blank))
		lines.WithLabelValues(item.Language, "comment").Set(float64(item.Comment))
		lines.WithLabelValues(item.Language, "code").Set(float64(item.Code))
		files.WithLabelValues(item.Language).Set(float64(item.Files))
	}
	skipped.Set(float64(len(result.Errors)))

	return registry, nil
}

// PrintPrometheus 以 Prometheus 文本格式输出扫描结果。
func PrintPrometheus(writer io.Writer, result model.ScanResult) error {
	registry, err := newMetricsRegistry(result)
	if err != nil {
		return err
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(writer, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// WritePrometheusFile 以 textfile collector 兼容的方式写入指标文件。
func WritePrometheusFile(path string, result model.ScanResult) error {
	registry, err := newMetricsRegistry(result)
	if err != nil {
		return err
	}

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
