package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ByLCY/billboard/binding"
	"github.com/ByLCY/billboard/config"
	"github.com/ByLCY/billboard/dsl"
	"github.com/ByLCY/billboard/layout"
	"github.com/ByLCY/billboard/logger"
)

// globalFlags 是所有子命令共享的参数，非零值覆盖配置文件。
type globalFlags struct {
	configPath string
	logLevel   string
	workers    int
	debugPath  string
}

// app 保存一次命令执行所需的配置与日志。
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "billboard <input>",
		Short:         "Compute the largest font size that fits each billboard",
		Long:          "Reads a case count followed by \"width height word...\" lines and prints the largest integer font size at which each billboard's words fit when greedily packed.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, flags, args[0])
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to YAML config file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.IntVarP(&flags.workers, "workers", "w", 0, "Maximum billboards solved concurrently (0 = unlimited)")
	pf.StringVar(&flags.debugPath, "debug", "", "Write the solve result as JSON to this path")

	root.AddCommand(newSolveCmd(flags), newFitsCmd(flags), newRenderCmd(flags))
	return root
}

func newSolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <input>",
		Short: "Print the maximum font size for every case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, flags, args[0])
		},
	}
}

func setup(flags *globalFlags) (*app, error) {
	cfg, err := config.Read(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log, closeLog, err := logger.Init(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &app{cfg: cfg, log: log, closeLog: closeLog}, nil
}

func runSolve(cmd *cobra.Command, flags *globalFlags, input string) error {
	a, err := setup(flags)
	if err != nil {
		return err
	}
	defer a.closeLog()

	res, err := a.solve(cmd.Context(), cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	if flags.debugPath != "" {
		if err := writeDebug(res, flags.debugPath); err != nil {
			return err
		}
	}
	if err := writeCases(cmd.OutOrStdout(), res, a.cfg.Output); err != nil {
		return err
	}
	if res.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", res.Failed, len(res.Cases))
	}
	return nil
}

// readBillboards 读取输入文件，"-" 表示标准输入。
func readBillboards(stdin io.Reader, input string) ([]layout.Billboard, error) {
	if input == "-" {
		boards, err := dsl.ParseBillboards(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stdin: %w", err)
		}
		return boards, nil
	}
	file, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", input, err)
	}
	defer file.Close()

	boards, err := dsl.ParseBillboards(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", input, err)
	}
	return boards, nil
}

func (a *app) solve(ctx context.Context, stdin io.Reader, input string) (*layout.Result, error) {
	boards, err := readBillboards(stdin, input)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	a.log.Debug("input parsed", "input", input, "cases", len(boards))
	return layout.Solve(ctx, boards, layout.SolveOptions{Workers: a.cfg.Workers, Logger: a.log})
}

func writeCases(w io.Writer, res *layout.Result, out config.OutputConfig) error {
	for _, c := range res.Cases {
		var line string
		if c.OK() {
			line = binding.Interpolate(out.Format, map[string]any{
				"case":   c.Case,
				"font":   c.FontSize,
				"width":  c.Billboard.Width,
				"height": c.Billboard.Height,
				"words":  len(c.Billboard.WordLengths),
				"lines":  len(c.Lines),
			})
		} else {
			line = binding.Interpolate(out.ErrorFormat, map[string]any{
				"case":  c.Case,
				"error": c.Error,
			})
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeDebug(res *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(res, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
