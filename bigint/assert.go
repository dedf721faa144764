package bigint

import "fmt"

// debugAssertionsEnabled gates the programmer-contract checks described in
// spec §7: in production builds the caller is trusted to respect aliasing
// and width contracts; enabling this surfaces violations as panics instead
// of undefined behavior.
var debugAssertionsEnabled = false

// EnableDebugAssertions turns on contract checking for the bigint package.
// Intended for tests and for callers debugging a misuse of the API; not
// meant to be toggled at steady state in a production build.
func EnableDebugAssertions(v bool) {
	debugAssertionsEnabled = v
}

func assert(cond bool, format string, args ...any) {
	if debugAssertionsEnabled && !cond {
		panic(fmt.Errorf(format, args...))
	}
}
