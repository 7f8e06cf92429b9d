package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"searchconf/internal/coordinator"
	"searchconf/internal/domain"
	"searchconf/internal/search"
)

// ErrInterrupted is returned when a headless search is stopped by a signal.
var ErrInterrupted = errors.New("search interrupted")

// NewSearchCommand creates the headless search subcommand
func NewSearchCommand() *cobra.Command {
	var (
		ext           string
		noRecursive   bool
		caseSensitive bool
		strict        bool
	)

	cmd := &cobra.Command{
		Use:   "search <folder> <text>",
		Short: "Print matching files without opening the finder",
		Long: `Search prints one matching path per line on stdout and a summary on
stderr, using the same matching rules as the interactive finder.

Exit code: 0 when the search ran to completion (with or without matches),
1 on invalid input or interruption.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runSearch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), domain.SearchParams{
				Folder:        args[0],
				Query:         args[1],
				Extension:     ext,
				Recursive:     !noRecursive,
				CaseSensitive: caseSensitive,
				Strict:        strict,
			})
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "e", search.DefaultExtension, "extension or glob pattern of the files to read")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "only look at the folder's direct children")
	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "s", false, "match the text case-sensitively")
	cmd.Flags().BoolVar(&strict, "strict", false, "try the next encoding when a file does not decode cleanly")

	return cmd
}

// runSearch drives a coordinator from a blocking reader loop. Paths go to
// out as they arrive, the summary goes to errOut.
func runSearch(ctx context.Context, out, errOut io.Writer, params domain.SearchParams) error {
	coord := coordinator.New(nil)
	if _, err := coord.Start(params); err != nil {
		return fmt.Errorf("invalid search: %w", err)
	}

	done := ctx.Done()
	interrupted := false
	count := 0
	for {
		select {
		case <-done:
			// Keep draining until the completion marker arrives.
			done = nil
			interrupted = true
			coord.Stop()
		case <-coord.Ready():
		}

		for _, msg := range coord.Drain() {
			if msg.IsDone() {
				printSummary(errOut, count, msg.Cancelled)
				if interrupted {
					return ErrInterrupted
				}
				return nil
			}
			count++
			fmt.Fprintln(out, msg.Path)
		}
	}
}

func printSummary(w io.Writer, count int, cancelled bool) {
	prefix := ""
	if cancelled {
		prefix = color.New(color.FgYellow).Sprint("Stopped: ")
	}
	if count == 0 {
		fmt.Fprintf(w, "%s%s\n", prefix, color.New(color.FgHiBlack).Sprint("Search complete: no matching files."))
		return
	}
	fmt.Fprintf(w, "%s%s\n", prefix, color.New(color.FgGreen).Sprintf("Search complete: %d files", count))
}
