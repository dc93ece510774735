package commands

import (
	"strconv"

	"eqlink/lib/jobseq"
	"eqlink/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var postingsFreetext *string
var postingsTimeframe *string
var postingsLimit *int

func init() {
	postingsFreetext = postingsCmd.Flags().String("freetext", "", "Keyword to filter postings by.")
	postingsTimeframe = postingsCmd.Flags().String("timeframe", "Last30Days", "Posting window, e.g. Last30Days.")
	postingsLimit = postingsCmd.Flags().Int("limit", 20, "Maximum rows to fetch.")
	rootCmd.AddCommand(postingsCmd)
}

var postingsCmd = &cobra.Command{
	Use:   "postings <region-code> <region-type>",
	Short: "Lists recent job postings in a region.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		regionType, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("region-type must be an integer", err)
		}

		client := newClient()
		t, err := client.RTI.JobPostings(cmd.Context(), jobseq.JobPostingsOptions{
			Region:    jobseq.Selector{Code: args[0], Type: regionType},
			Freetext:  *postingsFreetext,
			Timeframe: *postingsTimeframe,
			EndRecord: *postingsLimit,
		})
		if err != nil {
			serviceutil.Fatal("failed to fetch postings", err)
		}
		renderTable(t)
	},
}
