package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"acts-service-go/internal/domain/acts"
)

var (
	previewInput string
	previewJSON  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the text of an act without rendering a file",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "-", "input file (.json, .yaml) or - for stdin")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "print the summary as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	in, err := readInput(previewInput, cmd.InOrStdin())
	if err != nil {
		return err
	}

	p, err := acts.NewService(newAssembler(), nil).Preview(cmd.Context(), in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if previewJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Fprintf(out, "Файл: %s\n", p.FileName)
	fmt.Fprintf(out, "Приложение: %t\n\n", p.NeedsAppendix)
	fmt.Fprint(out, p.Text)
	return nil
}
