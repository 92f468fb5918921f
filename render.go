package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ByLCY/billboard/renderer"
	canvasrenderer "github.com/ByLCY/billboard/renderer/canvas"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		font   string
	)
	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Solve every case and draw the packed billboards into a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.closeLog()
			if font != "" {
				a.cfg.Render.Font = font
			}

			res, err := a.solve(cmd.Context(), cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if flags.debugPath != "" {
				if err := writeDebug(res, flags.debugPath); err != nil {
					return err
				}
			}

			var r renderer.Renderer = canvasrenderer.NewRenderer(canvasrenderer.Options{
				Cell:     a.cfg.Cell(),
				Margin:   a.cfg.Margin(),
				FontPath: a.cfg.Render.Font,
			})
			pdfBytes, err := r.Render(res)
			if err != nil {
				return fmt.Errorf("渲染 PDF 失败: %w", err)
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("创建输出目录失败: %w", err)
			}
			if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("写入 PDF 文件失败: %w", err)
			}
			a.log.Info("preview written", "path", output, "cases", res.Solved)
			fmt.Fprintf(cmd.OutOrStdout(), "已生成 PDF：%s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "output/billboards.pdf", "PDF output path")
	cmd.Flags().StringVar(&font, "font", "", "Font file used to label words (ttf/otf/woff)")
	return cmd
}
