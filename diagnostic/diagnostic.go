// Package diagnostic provides the rich diagnostic record shared by every
// stage of the pipeline past the raw parser (§4.6, §7, §9 "User-visible
// behavior"). It descends from the teacher's errors.GraphQLError /
// errors.MultiError (message + Location list), generalized with a Kind, a
// primary span, labeled secondary spans, and help text.
package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shyptr/gqlcore/source"
)

// Label attaches a short message to a secondary span, e.g. pointing back at
// the prior definition a collision conflicts with.
type Label struct {
	Span    source.Span
	Message string
}

// Diagnostic is one reported defect: a Kind, the primary location it was
// found at, zero or more labeled secondary locations, and optional
// remediation help text (§4.6 "Each diagnostic records...").
type Diagnostic struct {
	Kind       Kind
	Message    string
	Primary    source.Span
	Secondary  []Label
	Help       string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// WithLabel appends a secondary label and returns d for chaining.
func (d *Diagnostic) WithLabel(span source.Span, message string) *Diagnostic {
	d.Secondary = append(d.Secondary, Label{Span: span, Message: message})
	return d
}

// WithHelp sets the help string and returns d for chaining.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// New constructs a Diagnostic of the given kind at the given primary span.
func New(kind Kind, span source.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Primary: span,
	}
}

// List is an accumulated, order-independent collection of diagnostics
// (§4.6 "pure and order-independent"; §7 "errors are accumulated, not
// thrown"). Validators append freely during their own pass; Sort imposes
// the deterministic external order required by §5 and §7 before the list
// is handed back to a caller.
type List []*Diagnostic

// Add appends d to the list if d is non-nil, and returns the list.
func (l List) Add(d *Diagnostic) List {
	if d == nil {
		return l
	}
	return append(l, d)
}

// Sort orders diagnostics by (file, primary offset, kind) as required by
// §5 and §7, so that any valid execution order of independent validators
// yields byte-identical externally observable output.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i], l[j]
		if a.Primary.File != b.Primary.File {
			return a.Primary.File.String() < b.Primary.File.String()
		}
		if a.Primary.Start != b.Primary.Start {
			return a.Primary.Start < b.Primary.Start
		}
		return a.Kind < b.Kind
	})
}

// HasErrors reports whether the list is non-empty. All diagnostics emitted
// by this module are fatal to "Valid" status — there is no separate
// warning tier (§4.8: "Validation returns either Valid<T> ... or
// WithErrors<T>").
func (l List) HasErrors() bool {
	return len(l) > 0
}

// Render produces a deterministic, human-readable rendering of the list
// using sources to look up excerpts. Diagnostics are sorted first.
func (l List) Render(sources *source.Map) string {
	sorted := make(List, len(l))
	copy(sorted, l)
	sorted.Sort()

	var b strings.Builder
	for i, d := range sorted {
		if i > 0 {
			b.WriteString("\n\n")
		}
		loc := sources.Locate(d.Primary.File, d.Primary.Start)
		fmt.Fprintf(&b, "error[%s]: %s\n  --> %s:%s", d.Kind, d.Message, sources.Path(d.Primary.File), loc)
		if excerpt := sources.Excerpt(d.Primary); excerpt != "" {
			fmt.Fprintf(&b, "\n    | %s", excerpt)
		}
		for _, label := range d.Secondary {
			labelLoc := sources.Locate(label.Span.File, label.Span.Start)
			fmt.Fprintf(&b, "\n  note: %s at %s:%s", label.Message, sources.Path(label.Span.File), labelLoc)
		}
		if d.Help != "" {
			fmt.Fprintf(&b, "\n  help: %s", d.Help)
		}
	}
	return b.String()
}

func (l List) Error() string {
	var msgs []string
	for _, d := range l {
		msgs = append(msgs, d.Error())
	}
	return strings.Join(msgs, "\n")
}
