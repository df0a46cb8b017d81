// parser_tracing.go prints a call tree of the Pratt parser's descent
// through parseExpression/ParseProgram, gated by TracingEnabled so it
// costs nothing unless a caller (the CLI's --trace flag) turns it on.
package parser

import (
	"fmt"
	"strings"
)

// TracingEnabled turns trace/untrace's output on. Off by default;
// cmd/monkey sets it from the --trace flag before parsing anything.
var TracingEnabled = false

var traceLevel int

const traceIdentPlaceholder = "\t"

func identLevel() string {
	return strings.Repeat(traceIdentPlaceholder, traceLevel-1)
}

func tracePrint(fs string) {
	if !TracingEnabled {
		return
	}
	fmt.Printf("%s%s\n", identLevel(), fs)
}

func incIdent() { traceLevel++ }
func decIdent() { traceLevel-- }

// trace marks entry into a parse function, indenting subsequent trace
// output one level deeper. Call as `defer untrace(trace("name"))`.
func trace(msg string) string {
	incIdent()
	tracePrint("BEGIN " + msg)
	return msg
}

// untrace marks exit from a parse function traced with trace.
func untrace(msg string) {
	tracePrint("END " + msg)
	decIdent()
}
