package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/memory-garden/internal/application"
	"github.com/bnema/memory-garden/internal/domain"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *app) *cobra.Command {
	var (
		text    string
		emotion string
		from    string
		to      string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search memories by text, emotion or date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			memories, err := app.service.Search(cmd.Context(), application.SearchCommand{
				Query: domain.SearchQuery{
					UserID:   domain.UserID(app.cfg.UserID),
					Text:     strings.TrimSpace(text),
					Emotion:  strings.TrimSpace(emotion),
					DateFrom: strings.TrimSpace(from),
					DateTo:   strings.TrimSpace(to),
				},
			})
			if err != nil {
				return err
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, searchResult{Memories: memories})
			}

			return writeMemoryList(cmd.OutOrStdout(), memories)
		},
	}

	cmd.Flags().Int64("user-id", 0, "User whose memories are searched (default from config)")
	cmd.Flags().String("source", "", "Memory source: api or file (default from config)")
	cmd.Flags().StringVarP(&text, "query", "q", "", "Match title or date, case-insensitive")
	cmd.Flags().StringVar(&emotion, "emotion", "", "Only memories with this emotion")
	cmd.Flags().StringVar(&from, "from", "", "Earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Latest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, yaml or toml")

	return cmd
}

// searchResult wraps the list so TOML gets a top-level table.
type searchResult struct {
	Memories []domain.Memory `json:"memories" yaml:"memories" toml:"memories"`
}

func writeMemoryList(w io.Writer, memories []domain.Memory) error {
	if len(memories) == 0 {
		_, err := fmt.Fprintln(w, "No memories match.")
		return err
	}

	for _, memory := range memories {
		emotion := memory.Emotion
		if emotion == "" {
			emotion = "-"
		}
		if _, err := fmt.Fprintf(w, "%-6d %s  %-10s %s\n", memory.ID, memory.Date(), emotion, memory.Title); err != nil {
			return err
		}
	}

	return nil
}
