// Command actgen собирает акт приёма-передачи из JSON или YAML без HTTP-сервера.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"acts-service-go/internal/domain/acts"
	"acts-service-go/internal/pkg/imagemeta"
	"acts-service-go/internal/pkg/logger"
)

var (
	verbose       bool
	city          string
	approverTitle string
)

var rootCmd = &cobra.Command{
	Use:   "actgen",
	Short: "Generate equipment transfer acts",
	Long: `actgen builds an equipment transfer act (DOCX or PDF) from a JSON or YAML
description of the act, the same input the HTTP service accepts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.InitConsole(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&city, "city", os.Getenv("ACTS_CITY"), "city printed in the act header")
	rootCmd.PersistentFlags().StringVar(&approverTitle, "approver", os.Getenv("ACTS_APPROVER_TITLE"), "approver title in the header")

	rootCmd.AddCommand(renderCmd, previewCmd)
}

func newAssembler() *acts.Assembler {
	return acts.NewAssembler(acts.Options{
		City:          city,
		ApproverTitle: approverTitle,
		PhotoBox:      imagemeta.DefaultBox,
	})
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
