package layout

import "log/slog"

// SolveOptions 配置批量求解阶段的并发度与日志输出。
type SolveOptions struct {
	Workers int          // 并发求解的广告牌数量上限，<=0 时不限制
	Logger  *slog.Logger // 为空时使用 slog.Default()
}

func (o SolveOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
