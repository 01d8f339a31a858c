package mapping

import (
	"fmt"

	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-multierror"
)

// EntryFailure is one build-time entry that failed to compile into
// relations. The entry is discarded; the build continues.
type EntryFailure struct {
	Index int // position in the input entry sequence
	Left  string
	Right string
	Err   error
}

func (f EntryFailure) Error() string {
	return fmt.Sprintf("entry %d (%q = %q): %v", f.Index, f.Left, f.Right, f.Err)
}

// QueryFailure is a non-fatal failure encountered during the best-effort
// OSIS fallback at query time.
type QueryFailure struct {
	Reference string
	Err       error
}

func (f QueryFailure) Error() string {
	return fmt.Sprintf("query fallback for %q: %v", f.Reference, f.Err)
}

// Diagnostics accumulates build-time entry failures and query-time
// fallback failures on two independent channels, and exposes hasErrors
// against the build channel only (per the contract: query-time fallback
// failures degrade query results to empty passages, they do not mark the
// compiled table itself as having errors).
type Diagnostics struct {
	build *multierror.Error
	query *multierror.Error
}

// NewDiagnostics returns an empty diagnostics sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// RecordEntryFailure logs a build-time entry failure.
func (d *Diagnostics) RecordEntryFailure(index int, left, right string, err error) {
	d.build = multierror.Append(d.build, errwrap.Wrapf("build: {{err}}", EntryFailure{
		Index: index, Left: left, Right: right, Err: err,
	}))
}

// RecordQueryFailure logs a query-time fallback failure.
func (d *Diagnostics) RecordQueryFailure(reference string, err error) {
	d.query = multierror.Append(d.query, errwrap.Wrapf("query: {{err}}", QueryFailure{
		Reference: reference, Err: err,
	}))
}

// HasErrors reports whether any build-time entry failed to compile.
func (d *Diagnostics) HasErrors() bool {
	return d.build.ErrorOrNil() != nil
}

// BuildErrors returns every recorded build-time failure, most recent last.
func (d *Diagnostics) BuildErrors() []error {
	if d.build == nil {
		return nil
	}
	return d.build.WrappedErrors()
}

// QueryErrors returns every recorded query-time fallback failure, most
// recent last.
func (d *Diagnostics) QueryErrors() []error {
	if d.query == nil {
		return nil
	}
	return d.query.WrappedErrors()
}
