package px

import (
	"errors"
	"fmt"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// KindUnknownToken marks a token (or palette reference) that did not
	// resolve to a color. Lenient renders substitute opaque magenta.
	KindUnknownToken Kind = iota
	// KindOutOfBounds marks geometry clipped by the canvas edges.
	KindOutOfBounds
	// KindForwardReference marks a fill-inside boundary used before it is
	// rasterized. Always fatal.
	KindForwardReference
	// KindSizeMismatch marks a rendered buffer whose dimensions differ
	// from the slot it is placed into.
	KindSizeMismatch
	// KindUnknownSymbol marks a composition map cell that resolves to no
	// sprite. Lenient renders treat the cell as empty.
	KindUnknownSymbol
	// KindStructuralError marks malformed input: sizes not divisible by
	// the cell size, negative shape parameters, oversized nine-slice
	// margins, and the like. Always fatal.
	KindStructuralError
)

// String returns the kind's taxonomy name.
func (k Kind) String() string {
	switch k {
	case KindUnknownToken:
		return "UnknownToken"
	case KindOutOfBounds:
		return "OutOfBounds"
	case KindForwardReference:
		return "ForwardReference"
	case KindSizeMismatch:
		return "SizeMismatch"
	case KindUnknownSymbol:
		return "UnknownSymbol"
	case KindStructuralError:
		return "StructuralError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fatal reports whether the kind aborts the render call in both modes.
// Fatal kinds indicate the input graph itself is malformed rather than a
// quality-of-output tradeoff.
func (k Kind) Fatal() bool {
	return k == KindForwardReference || k == KindStructuralError
}

// Severity grades a diagnostic.
type Severity int

const (
	// SeverityWarning marks a recoverable condition; the render continued
	// with a fallback.
	SeverityWarning Severity = iota
	// SeverityError marks a condition that failed the render call.
	SeverityError
)

// String returns "warning" or "error".
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic describes one condition encountered during a render call.
// Diagnostics are collected in encounter order and never dropped.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	// Message is a human-readable description.
	Message string
	// Scope names the sprite or composition being rendered.
	Scope string
	// Token holds the region token or map symbol involved, when applicable.
	Token string
	// Pos holds the pixel coordinate involved, when applicable.
	Pos *Point
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	s := d.Severity.String() + ": "
	if d.Scope != "" {
		s += d.Scope + ": "
	}
	return s + d.Message
}

// Fatal render errors. Recoverable conditions never surface as errors in
// lenient mode; in strict mode they fail the call with ErrStrict once the
// full diagnostic list has been gathered.
var (
	// ErrForwardReference reports a fill-inside boundary token referenced
	// before the region carrying it is rasterized.
	ErrForwardReference = errors.New("px: forward reference")

	// ErrStructural reports malformed input: bad dimensions, negative
	// shape parameters, derivation cycles, oversized nine-slice margins.
	ErrStructural = errors.New("px: structural error")

	// ErrStrict reports a strict-mode render that hit error-severity
	// diagnostics. The returned diagnostics carry the detail.
	ErrStrict = errors.New("px: strict mode failure")
)

// collector accumulates diagnostics for one render call.
//
// The strict flag is fixed for the lifetime of the call and decides the
// severity of recoverable kinds. Fatal kinds are error severity in both
// modes. Aggregated reporters emit one diagnostic per distinct subject per
// call rather than one per occurrence.
type collector struct {
	strict bool
	diags  []Diagnostic
	failed bool
	seen   map[string]bool
}

func newCollector(strict bool) *collector {
	return &collector{strict: strict, seen: make(map[string]bool)}
}

// severity grades a kind under the collector's mode.
func (c *collector) severity(k Kind) Severity {
	if c.strict || k.Fatal() {
		return SeverityError
	}
	return SeverityWarning
}

// report appends a diagnostic.
func (c *collector) report(k Kind, scope, token string, pos *Point, format string, args ...any) {
	sev := c.severity(k)
	if sev == SeverityError {
		c.failed = true
	}
	c.diags = append(c.diags, Diagnostic{
		Kind:     k,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Scope:    scope,
		Token:    token,
		Pos:      pos,
	})
}

// reportOnce appends a diagnostic unless the same key was already reported
// during this call.
func (c *collector) reportOnce(key string, k Kind, scope, token string, pos *Point, format string, args ...any) {
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.report(k, scope, token, pos, format, args...)
}

// unknownToken reports an unresolved token, once per (scope, token) pair.
func (c *collector) unknownToken(scope, token string) {
	c.reportOnce("token\x00"+scope+"\x00"+token,
		KindUnknownToken, scope, token, nil, "unknown token %q", token)
}

// invalidColor reports a token whose declared color value failed to parse,
// once per (scope, token) pair.
func (c *collector) invalidColor(scope, token, value string) {
	c.reportOnce("color\x00"+scope+"\x00"+token,
		KindUnknownToken, scope, token, nil, "token %q has invalid color %q", token, value)
}

// unknownPalette reports an unresolvable named palette reference.
func (c *collector) unknownPalette(scope, name string) {
	c.report(KindUnknownToken, scope, "", nil, "unknown palette %q", name)
}

// outOfBounds reports clipped geometry, one diagnostic per region.
func (c *collector) outOfBounds(scope, token string, dropped int, first Point) {
	pos := first
	c.report(KindOutOfBounds, scope, token, &pos,
		"region %q: %d pixel(s) outside canvas, first at %v", token, dropped, pos)
}

// unknownSymbol reports an unresolvable map symbol, once per (scope,
// symbol) pair.
func (c *collector) unknownSymbol(scope, symbol, detail string) {
	c.reportOnce("symbol\x00"+scope+"\x00"+symbol,
		KindUnknownSymbol, scope, symbol, nil, "symbol %q %s", symbol, detail)
}

// sizeMismatch reports a buffer placed into a differently sized slot, once
// per (scope, name) pair.
func (c *collector) sizeMismatch(scope, name string, gotW, gotH, wantW, wantH int) {
	c.reportOnce("size\x00"+scope+"\x00"+name,
		KindSizeMismatch, scope, name, nil,
		"%q is %dx%d, slot is %dx%d", name, gotW, gotH, wantW, wantH)
}

// fatal appends an error-severity diagnostic and returns the matching
// sentinel error, wrapped with the message.
func (c *collector) fatal(k Kind, scope, token string, format string, args ...any) error {
	c.report(k, scope, token, nil, format, args...)
	base := ErrStructural
	if k == KindForwardReference {
		base = ErrForwardReference
	}
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}

// finish applies the strict-mode contract: when any error-severity
// diagnostic was collected, the buffer is withheld and ErrStrict returned.
func (c *collector) finish(pm *Pixmap) (*Pixmap, []Diagnostic, error) {
	if c.failed {
		return nil, c.diags, ErrStrict
	}
	return pm, c.diags, nil
}
