package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agente",
	Short: "Asistente AFP - indexador de procedimientos",
	Long: `agente builds structured JSON indices out of AFP procedure manuals.

Each source document is read page by page, summarized in batches and stored
as a hierarchical index (global summary, per-section summaries, keywords and
metadata) that the retrieval agent consults before falling back to reading
the full document.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
