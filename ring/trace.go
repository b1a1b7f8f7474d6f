package ring

import (
	"log"
	"os"
)

// HEXL_LOG_LEVEL selects the verbosity of the package's debug-time trace.
// Recognized values are "debug" and "trace"; any other value (including
// unset) disables tracing and the range-assertion overhead that comes with
// it. Production builds are expected to leave it unset.
const logLevelEnv = "HEXL_LOG_LEVEL"

var (
	traceLevel      = os.Getenv(logLevelEnv)
	debugAssertions = traceLevel == "debug" || traceLevel == "trace"
	traceLogger     = log.New(os.Stderr, "ring: ", log.LstdFlags)
)

// tracef emits a trace-level message iff HEXL_LOG_LEVEL=trace.
func tracef(format string, args ...interface{}) {
	if traceLevel == "trace" {
		traceLogger.Printf(format, args...)
	}
}

// assertRange panics with ErrInternalRangeViolation context when debug
// assertions are enabled and x is outside [0, bound). A no-op (early
// return) unless HEXL_LOG_LEVEL requests debug or trace verbosity.
func assertRange(name string, x, bound uint64) {
	if !debugAssertions {
		return
	}
	if x >= bound {
		traceLogger.Printf("%s: %d out of range [0,%d): %v", name, x, bound, ErrInternalRangeViolation)
		panic(ErrInternalRangeViolation)
	}
}
