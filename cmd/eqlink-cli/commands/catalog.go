package commands

import (
	"strconv"

	"eqlink/lib/jobseq"
	"eqlink/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var catalogType *int

func init() {
	catalogType = catalogCmd.Flags().Int("type", 0, "Only list codes of this type.")
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(catalogTypesCmd)
	rootCmd.AddCommand(schoolsCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog <regions|occupations|industries|cips|demographics|analytics>",
	Short: "Lists the codes one of the selector categories accepts.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		t, err := client.Catalog.Available(cmd.Context(), args[0], *catalogType)
		if err != nil {
			serviceutil.Fatal("failed to list catalog", err)
		}
		renderTable(t)
	},
}

var catalogTypesCmd = &cobra.Command{
	Use:   "catalog-types <category>",
	Short: "Lists the code types of a selector category.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		t, err := client.Catalog.AvailableTypes(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to list catalog types", err)
		}
		renderTable(t)
	},
}

var schoolsCmd = &cobra.Command{
	Use:   "schools <region-code> <region-type>",
	Short: "Lists the schools inside a region.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		regionType, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("region-type must be an integer", err)
		}
		client := newClient()
		t, err := client.Catalog.SchoolsForRegion(cmd.Context(), jobseq.Selector{
			Code: args[0],
			Type: regionType,
		})
		if err != nil {
			serviceutil.Fatal("failed to list schools", err)
		}
		renderTable(t)
	},
}
