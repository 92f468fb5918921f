package layout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Solve 并发计算每个广告牌的最大字号。
// 单个广告牌的错误只记录在对应的 CaseResult 中，不会中断其他广告牌；
// 只有 ctx 被取消时才返回错误。
func Solve(ctx context.Context, boards []Billboard, opts SolveOptions) (*Result, error) {
	log := opts.logger()
	cases := make([]CaseResult, len(boards))

	g, gCtx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i := range boards {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			cases[i] = solveOne(i+1, boards[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("solve cancelled: %w", err)
	}

	res := &Result{Cases: cases}
	for _, c := range cases {
		if c.OK() {
			res.Solved++
			log.Debug("case solved", "case", c.Case, "font", c.FontSize, "lines", len(c.Lines))
			continue
		}
		res.Failed++
		log.Warn("case failed", "case", c.Case, "err", c.Err)
	}
	log.Info("solve finished", "cases", len(cases), "solved", res.Solved, "failed", res.Failed)
	return res, nil
}

func solveOne(caseNo int, b Billboard) CaseResult {
	out := CaseResult{Case: caseNo, Billboard: b}
	if err := b.Validate(); err != nil {
		out.Err = err
		out.Error = err.Error()
		return out
	}
	size, err := b.MaxFont()
	if err != nil {
		out.Err = err
		out.Error = err.Error()
		return out
	}
	out.FontSize = size
	out.Lines, _ = b.Pack(size)
	return out
}
