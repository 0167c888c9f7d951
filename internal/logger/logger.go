// Package logger 提供全局结构化日志配置。
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New 构造 zerolog 日志器：调试模式输出彩色控制台日志，生产输出 JSON。
func New(debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if debug {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Str("service", "rearmsite").
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", "rearmsite").
		Logger()
}
