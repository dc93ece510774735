package jobseq

import (
	"eqlink/lib/restyutil"
)

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput dumps every HTTP exchange of clients
// created afterwards to the output, useful when debugging payload
// grammar against the live vendor. Call before NewClient.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
