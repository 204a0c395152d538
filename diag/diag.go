// Package diag collects diagnostics produced while resolving configuration
// or formatting a file. Nothing in here is fatal by itself — spec.md §7
// is explicit that configuration diagnostics never fail formatting, and
// that recoverable parse conditions are surfaced as diagnostics or
// verbatim output, never as a panic.
//
// The shape is grounded on core/text/parse/error.go's Error/ErrorList:
// a diagnostic names the property/location it concerns and carries a
// message; a List is just a slice with an Error() string for convenience
// when one needs to be surfaced as a Go error.
package diag

import "fmt"

// Diagnostic is a single non-fatal finding.
type Diagnostic struct {
	// Property is the configuration key or construct the diagnostic
	// concerns (e.g. "line_width", or a source position string). Empty for
	// diagnostics with no natural single locus.
	Property string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Property == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Property, d.Message)
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Addf appends a diagnostic with the given property and formatted message.
func (l *List) Addf(property, format string, args ...any) {
	*l = append(*l, Diagnostic{Property: property, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether no diagnostics were collected.
func (l List) Empty() bool { return len(l) == 0 }

// Error implements error so a List can be returned/wrapped directly when a
// caller wants to treat "there were diagnostics" as a failure (hosts are
// free to do this; the core itself never does).
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].String()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].String(), len(l)-1)
	}
}
