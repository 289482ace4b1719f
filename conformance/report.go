package conformance

import "fmt"

// CaseResult records the outcome of exporting one corpus case.
type CaseResult struct {
	// Name is the case identifier.
	Name string
	// Err is nil on success.
	Err error
}

// ExportReport aggregates per-case export outcomes.
type ExportReport struct {
	Results []CaseResult
}

// Exported returns the number of cases persisted successfully.
func (r *ExportReport) Exported() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed reports whether any case failed to export.
func (r *ExportReport) Failed() bool {
	return r.Exported() != len(r.Results)
}

// CaseFailure records one verification failure.
type CaseFailure struct {
	// Name is the corpus case that failed.
	Name string
	// Err describes what went wrong (sniff, decode, decrypt, or mismatch).
	Err error
}

// ImplReport tallies verification outcomes for one implementation.
type ImplReport struct {
	// Impl is the implementation identifier.
	Impl string
	// Missing is true when the implementation's store does not exist at
	// all; the whole implementation is then skipped, not failed.
	Missing bool
	// Passed, Failed, and Skipped count corpus cases.
	Passed  int
	Failed  int
	Skipped int
	// Failures holds the details behind the Failed count.
	Failures []CaseFailure
}

// Checked returns the number of cases actually exercised.
func (r *ImplReport) Checked() int {
	return r.Passed + r.Failed
}

func (r *ImplReport) fail(name string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, CaseFailure{Name: name, Err: err})
}

// Report aggregates verification outcomes across implementations.
type Report struct {
	Impls []ImplReport
}

// TotalPassed returns the overall pass count.
func (r *Report) TotalPassed() int {
	n := 0
	for _, impl := range r.Impls {
		n += impl.Passed
	}
	return n
}

// TotalFailed returns the overall failure count.
func (r *Report) TotalFailed() int {
	n := 0
	for _, impl := range r.Impls {
		n += impl.Failed
	}
	return n
}

// Failed reports whether any check failed anywhere in the sweep.
// Missing implementations and skipped cases do not count as failures.
func (r *Report) Failed() bool {
	return r.TotalFailed() > 0
}

// Summary returns the overall tally line, e.g. "Total: 40/40 passed".
func (r *Report) Summary() string {
	return fmt.Sprintf("Total: %d/%d passed", r.TotalPassed(), r.TotalPassed()+r.TotalFailed())
}
