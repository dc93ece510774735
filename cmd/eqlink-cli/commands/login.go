package commands

import (
	"log/slog"

	"eqlink/lib/configutil"
	"eqlink/lib/credstore"
	"eqlink/lib/jobseq"
	"eqlink/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var loginUsername *string
var loginPassword *string

func init() {
	loginUsername = loginCmd.Flags().String("username", "", "JobsEQ account username.")
	loginPassword = loginCmd.Flags().String("password", "", "JobsEQ account password.")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login [--username <user> --password <pass>]",
	Short: "Verifies credentials against JobsEQ and stores them in the OS keychain.",
	Run: func(cmd *cobra.Command, args []string) {
		username := *loginUsername
		password := *loginPassword
		if username == "" || password == "" {
			cfg, err := configutil.ReadConfig[Config]("config.json5")
			if err != nil {
				serviceutil.Fatal("pass --username/--password or provide a config.json5", err)
			}
			username = cfg.Username
			password = cfg.Password
		}

		client, err := jobseq.NewClient(jobseq.ClientOptions{
			Username: username,
			Password: password,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}
		err = client.Login(cmd.Context())
		if err != nil {
			serviceutil.Fatal("login failed", err)
		}

		err = credstore.Save(username, password)
		if err != nil {
			serviceutil.Fatal("failed to store credentials", err)
		}
		slog.Info("logged in", "username", username)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Removes stored credentials from the OS keychain.",
	Run: func(cmd *cobra.Command, args []string) {
		err := credstore.Clear()
		if err != nil {
			serviceutil.Fatal("failed to clear credentials", err)
		}
		slog.Info("logged out")
	},
}
