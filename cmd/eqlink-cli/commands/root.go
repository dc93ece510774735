package commands

import (
	"context"
	"fmt"
	"os"

	"eqlink/lib/jobseq"
	"eqlink/lib/restyutil"

	"github.com/spf13/cobra"
)

var debugHttp *string

var rootCmd = &cobra.Command{
	Use:   "eqlink-cli",
	Short: "eqlink-cli runs JobsEQ analytics from the terminal.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *debugHttp != "" {
			jobseq.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(*debugHttp))
		}
	},
}

func init() {
	debugHttp = rootCmd.PersistentFlags().String(
		"debug-http", "",
		"Dump every HTTP exchange to this directory.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
