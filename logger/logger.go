package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init 初始化全局 slog 日志：输出到 stderr，可选同时追加到文件。
// 返回的 close 用于关闭日志文件，没有文件时为空操作。
func Init(level string, logFile string) (*slog.Logger, func() error, error) {
	writers := []io.Writer{os.Stderr}
	closer := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, err
		}
		writers = append(writers, f)
		closer = f.Close
	}

	log := New(io.MultiWriter(writers...), level)
	slog.SetDefault(log)
	return log, closer, nil
}

// New 创建写入 w 的文本日志。
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Shorten time format
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})
	return slog.New(handler)
}

// ParseLevel 解析 debug/info/warn/error，未知值按 warn 处理。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
