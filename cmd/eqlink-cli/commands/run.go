package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"eqlink/lib/util/serviceutil"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/titanous/json5"
)

var runPayload *string

func init() {
	runPayload = runCmd.Flags().String("payload", "", "Path to a json5 file with the analytic payload.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <analytic-uuid> [--payload <path/to/payload.json5>]",
	Short: "Runs a raw analytic by UUID and prints the undecoded response.",
	Long: `Runs a raw analytic by UUID and prints the undecoded response.
Useful for analytics the typed client does not cover, or for
inspecting what a report actually returns.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			serviceutil.Fatal("not a valid analytic uuid", err)
		}

		var payload map[string]any
		if *runPayload != "" {
			raw, err := os.ReadFile(*runPayload)
			if err != nil {
				serviceutil.Fatal("failed to read payload file", err)
			}
			err = json5.Unmarshal(raw, &payload)
			if err != nil {
				serviceutil.Fatal("failed to parse payload file", err)
			}
		}

		client := newClient()
		res, err := client.RunAnalytic(cmd.Context(), id, payload)
		if err != nil {
			serviceutil.Fatal("analytic failed", err)
		}

		rendered, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			serviceutil.Fatal("failed to render response", err)
		}
		fmt.Println(string(rendered))
	},
}
