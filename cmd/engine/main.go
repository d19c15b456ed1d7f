// Command engine runs the jobtrack engine: the local HTTP API behind the
// tracker UI, plus offline skill extraction tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "engine",
	Short:        "jobtrack engine",
	SilenceUsage: true,
	Long: `The jobtrack engine stores tracked job applications and ranks the
skills mentioned in their descriptions.`,
}

var dataDirFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default $JOBTRACK_DATA_DIR or .)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
