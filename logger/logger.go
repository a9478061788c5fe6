package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var Logger *zerolog.Logger

// Init 初始化全局日志
// level: 日志级别，无法识别时回退到 info
// file: 日志文件路径，非空时整理记录同时追加到该文件
func Init(level string, file string) error {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if file != "" {
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = io.MultiWriter(os.Stdout, fileWriter)
	}

	console := zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"}
	logger := zerolog.New(console).With().Timestamp().Logger().Level(logLevel)

	Logger = &logger
	return nil
}

// Get 返回全局 logger
// 未初始化时返回丢弃所有输出的 logger，保证调用方无需判空
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
