// Package logging 构建 goloc 使用的 logrus 日志实例。
// 日志统一写到 stderr，stdout 只留给报告输出，便于管道处理。
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New 按级别创建日志实例。
func New(level string, out io.Writer) (*logrus.Entry, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logrus.NewEntry(logger), nil
}

// Discard 返回丢弃所有输出的日志实例，用于测试和库调用方未指定日志时。
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
