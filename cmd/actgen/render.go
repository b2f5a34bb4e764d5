package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acts-service-go/internal/domain/acts"
	"acts-service-go/internal/pkg/circuitbreaker"
	"acts-service-go/internal/pkg/docxgen"
	"acts-service-go/internal/pkg/gotenberg"
	"acts-service-go/internal/pkg/logger"
)

var (
	renderInput     string
	renderOutput    string
	renderFormat    string
	renderGotenberg string
	renderTimeout   time.Duration
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an act to DOCX or PDF",
	Long: `Renders the act described in the input file. PDF requires a running
Gotenberg instance.

Example:
  actgen render -i act.yaml -o act.docx
  actgen render -i act.json --format pdf --gotenberg http://localhost:3000`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "-", "input file (.json, .yaml) or - for stdin")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file or directory (default: generated file name)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "docx", "output format: docx or pdf")
	renderCmd.Flags().StringVar(&renderGotenberg, "gotenberg", os.Getenv("GOTENBERG_URL"), "Gotenberg URL for PDF conversion")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", time.Minute, "overall timeout")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := acts.ParseFormat(renderFormat)
	if err != nil {
		return err
	}
	in, err := readInput(renderInput, cmd.InOrStdin())
	if err != nil {
		return err
	}

	if err := docxgen.SetupLicense(os.Getenv("UNIDOC_LICENSE_API_KEY")); err != nil {
		return err
	}

	opts := []acts.ServiceOption{acts.WithLogger(logger.Log)}
	if renderGotenberg != "" {
		opts = append(opts, acts.WithConverter(gotenberg.NewResilientClient(gotenberg.ResilientConfig{
			URL:     renderGotenberg,
			Timeout: renderTimeout,
			Breaker: circuitbreaker.Config{Name: "gotenberg_cli", FailureThreshold: 3, ResetTimeout: 10 * time.Second},
		}, logger.Log)))
	}
	svc := acts.NewService(newAssembler(), docxgen.NewSerializer(logger.Log), opts...)

	ctx, cancel := context.WithTimeout(cmd.Context(), renderTimeout)
	defer cancel()

	res, err := svc.Generate(ctx, in, format)
	if err != nil {
		return err
	}

	out := outputPath(renderOutput, res.FileName)
	if err := os.WriteFile(out, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("Act written", zap.String("path", out), zap.Bool("appendix", res.Appendix))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// outputPath пустой путь или каталог дополняются именем файла акта
func outputPath(flag, fileName string) string {
	if flag == "" {
		return fileName
	}
	if st, err := os.Stat(flag); err == nil && st.IsDir() {
		return filepath.Join(flag, fileName)
	}
	return flag
}
