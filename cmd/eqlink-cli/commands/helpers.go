package commands

import (
	"errors"
	"os"

	"eqlink/lib/configutil"
	"eqlink/lib/credstore"
	"eqlink/lib/jobseq"
	"eqlink/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Config struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// credentials prefers the OS keychain, falling back to a
// config.json5 next to the cwd.
func credentials() (string, string) {
	username, password, err := credstore.Load()
	if err == nil {
		return username, password
	}
	if !errors.Is(err, credstore.ErrNotFound) {
		serviceutil.Fatal("failed to read keychain", err)
	}

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("no stored credentials, run `eqlink-cli login` first", err)
	}
	return cfg.Username, cfg.Password
}

func newClient() *jobseq.Client {
	username, password := credentials()
	client, err := jobseq.NewClient(jobseq.ClientOptions{
		Username: username,
		Password: password,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	return client
}

func renderTable(t jobseq.Table) {
	w := table.NewWriter()
	w.SetStyle(table.StyleRounded)
	w.SetOutputMirror(os.Stdout)

	header := table.Row{}
	for _, col := range t.Columns {
		header = append(header, col)
	}
	w.AppendHeader(header)

	for _, row := range t.Rows {
		cells := table.Row{}
		for _, col := range t.Columns {
			cells = append(cells, row[col])
		}
		w.AppendRow(cells)
	}
	w.Render()
}
