package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finflow-cli",
		Short: "FinFlow CLI tool",
		Long:  `A command line interface for interacting with the FinFlow API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinFlow API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(templateCommand())
	rootCmd.AddCommand(materializeCommand())
	rootCmd.AddCommand(materializeAllCommand())
	rootCmd.AddCommand(occurrenceCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func templateCommand() *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Recurrence template operations",
	}

	var (
		ownerID     string
		description string
		amount      string
		kind        string
		categoryID  string
		accountID   string
		frequency   string
		interval    int
		startDate   string
		endDate     string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recurrence template",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"owner_id":    ownerID,
				"description": description,
				"amount":      amount,
				"kind":        kind,
				"category_id": categoryID,
				"account_id":  accountID,
				"frequency":   frequency,
				"interval":    interval,
				"start_date":  startDate,
			}
			if endDate != "" {
				payload["end_date"] = endDate
			}
			doRequest(http.MethodPost, "/api/v1/templates", payload, http.StatusCreated)
		},
	}
	createCmd.Flags().StringVar(&ownerID, "owner", "", "Owner ID")
	createCmd.Flags().StringVar(&description, "description", "", "Description copied onto every occurrence")
	createCmd.Flags().StringVar(&amount, "amount", "", "Amount, e.g. 1200.50")
	createCmd.Flags().StringVar(&kind, "kind", "expense", "Transaction kind: income or expense")
	createCmd.Flags().StringVar(&categoryID, "category", "", "Category ID")
	createCmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	createCmd.Flags().StringVar(&frequency, "frequency", "monthly", "Frequency: daily, weekly, monthly or yearly")
	createCmd.Flags().IntVar(&interval, "interval", 1, "Every N frequency units")
	createCmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&endDate, "end", "", "Inclusive end date (YYYY-MM-DD), empty for open-ended")
	createCmd.MarkFlagRequired("owner")
	createCmd.MarkFlagRequired("amount")
	createCmd.MarkFlagRequired("start")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a template by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/templates/"+args[0], nil, http.StatusOK)
		},
	}

	var listOwner string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's templates",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/templates?owner_id="+listOwner, nil, http.StatusOK)
		},
	}
	listCmd.Flags().StringVar(&listOwner, "owner", "", "Owner ID")
	listCmd.MarkFlagRequired("owner")

	var templateEndDate string
	endCmd := &cobra.Command{
		Use:   "end <id>",
		Short: "Set a template's inclusive end date",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{"end_date": templateEndDate}
			doRequest(http.MethodPost, "/api/v1/templates/"+args[0]+"/end", payload, http.StatusOK)
		},
	}
	endCmd.Flags().StringVar(&templateEndDate, "date", "", "Inclusive end date (YYYY-MM-DD)")
	endCmd.MarkFlagRequired("date")

	var scheduleAsOf string
	scheduleCmd := &cobra.Command{
		Use:   "schedule <id>",
		Short: "Preview the dates a template generates through a horizon",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/templates/" + args[0] + "/schedule"
			if scheduleAsOf != "" {
				path += "?as_of=" + scheduleAsOf
			}
			doRequest(http.MethodGet, path, nil, http.StatusOK)
		},
	}
	scheduleCmd.Flags().StringVar(&scheduleAsOf, "as-of", "", "Horizon date (YYYY-MM-DD), defaults to today")

	templateCmd.AddCommand(createCmd, getCmd, listCmd, endCmd, scheduleCmd)
	return templateCmd
}

func materializeCommand() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "materialize <template-id>",
		Short: "Materialize one template's occurrences through a horizon",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{}
			if asOf != "" {
				payload["as_of"] = asOf
			}
			doRequest(http.MethodPost, "/api/v1/templates/"+args[0]+"/materialize", payload, http.StatusOK)
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "Horizon date (YYYY-MM-DD), defaults to today")
	return cmd
}

func materializeAllCommand() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "materialize-all",
		Short: "Materialize every active template through a horizon",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{}
			if asOf != "" {
				payload["as_of"] = asOf
			}

			body := doRequest(http.MethodPost, "/api/v1/materializations", payload, http.StatusOK)

			// A batch run succeeds as a whole even when individual templates
			// fail; surface those as a non-zero exit.
			var result struct {
				Failures []struct {
					TemplateID string `json:"template_id"`
					Error      string `json:"error"`
				} `json:"failures"`
			}
			if err := json.Unmarshal(body, &result); err == nil && len(result.Failures) > 0 {
				fmt.Fprintf(os.Stderr, "%d template(s) failed:\n", len(result.Failures))
				for _, f := range result.Failures {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", f.TemplateID, f.Error)
				}
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "Horizon date (YYYY-MM-DD), defaults to today")
	return cmd
}

func occurrenceCommand() *cobra.Command {
	occurrenceCmd := &cobra.Command{
		Use:   "occurrence",
		Short: "Materialized occurrence operations",
	}

	listCmd := &cobra.Command{
		Use:   "list <template-id>",
		Short: "List a template's occurrences",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/templates/"+args[0]+"/occurrences", nil, http.StatusOK)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one occurrence (it will not be regenerated)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodDelete, "/api/v1/occurrences/"+args[0], nil, http.StatusNoContent)
		},
	}

	occurrenceCmd.AddCommand(listCmd, deleteCmd)
	return occurrenceCmd
}

// doRequest performs an API call, prints the response, and exits non-zero on
// an unexpected status. It returns the response body for further inspection.
func doRequest(method, path string, payload any, wantStatus int) []byte {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != wantStatus {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	if len(body) > 0 {
		printJSON(body)
	}
	return body
}

func printJSON(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(buf.String())
}
