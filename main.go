// Command resumeformatter rewrites a résumé for a job description with a
// chain of Gemini agents, either once from the command line or as a queue
// worker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeformatter <resume> <job-description>",
	Short: "Reformat a résumé for a job description",
	Long: `resumeformatter analyses a résumé (PDF, DOCX or text) and a job description
(text or HTML), researches the employer and rewrites the résumé to match.

Examples:
  resumeformatter cv.pdf jd.txt
  resumeformatter cv.pdf jd.txt -o output.md -f markdown
  resumeformatter cv.pdf jd.html -o output.html -f html -q`,
	Args:          cobra.ExactArgs(2),
	RunE:          runFormat,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
