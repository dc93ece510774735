package main

import (
	"context"

	"eqlink/cmd/eqlink-cli/commands"
	"eqlink/lib/telemetry"
	"eqlink/lib/util/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(true)
	// telemetry.json5 is optional for the CLI; without one, spans and
	// perf gauges go nowhere.
	t, err := telemetry.SetupFromEnv(ctx, "eqlink-cli")
	if err == nil {
		defer t.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
