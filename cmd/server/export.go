package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexTLDR/valentine/internal/database"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all valentine responses as CSV to stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.db.Migrate(cmd.Context(), a.log); err != nil {
			return err
		}

		responses, err := a.db.ListResponses(cmd.Context())
		if err != nil {
			return err
		}
		return writeResponsesCSV(os.Stdout, responses)
	},
}

var csvHeader = []string{"id", "name", "response", "said_yes", "message", "submitted_at", "ip_address"}

// formatResponseForCSV converts a response into one CSV row
func formatResponseForCSV(r *database.Response) []string {
	saidYes := "no"
	if r.SaidYes() {
		saidYes = "yes"
	}

	message := "-"
	if r.Message.Valid && r.Message.String != "" {
		// Keep one record per line for spreadsheet imports
		message = strings.ReplaceAll(r.Message.String, "\n", " ")
	}

	ip := "-"
	if r.IPAddress.Valid {
		ip = r.IPAddress.String
	}

	return []string{
		fmt.Sprint(r.ID),
		r.GirlfriendName,
		r.Response,
		saidYes,
		message,
		r.CreatedAt.Format("2006-01-02 15:04:05"),
		ip,
	}
}

func writeResponsesCSV(w io.Writer, responses []*database.Response) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range responses {
		if err := cw.Write(formatResponseForCSV(r)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
