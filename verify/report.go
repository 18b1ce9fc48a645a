package verify

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mismatch is a case where checkedint disagreed with the oracle.
type Mismatch struct {
	Op   Op     `json:"op" yaml:"op" cbor:"op"`
	A    string `json:"a" yaml:"a" cbor:"a"`
	B    string `json:"b,omitempty" yaml:"b,omitempty" cbor:"b,omitempty"`
	Want string `json:"want" yaml:"want" cbor:"want"`
	Got  string `json:"got" yaml:"got" cbor:"got"`
}

// OpReport summarizes the sweep of one operator.
type OpReport struct {
	Op            Op                `json:"op" yaml:"op" cbor:"op"`
	Exhaustive    bool              `json:"exhaustive" yaml:"exhaustive" cbor:"exhaustive"`
	Total         uint64            `json:"total" yaml:"total" cbor:"total"`
	Counts        map[string]uint64 `json:"counts" yaml:"counts" cbor:"counts"`
	MismatchCount uint64            `json:"mismatch_count" yaml:"mismatch_count" cbor:"mismatch_count"`
	Mismatches    []Mismatch        `json:"mismatches,omitempty" yaml:"mismatches,omitempty" cbor:"mismatches,omitempty"`
	Elapsed       time.Duration     `json:"elapsed" yaml:"elapsed" cbor:"elapsed"`

	outcomes   [numOutcomes]*roaring.Bitmap
	mismatched *roaring.Bitmap
}

func newOpReport(op Op) *OpReport {
	r := &OpReport{Op: op, mismatched: roaring.New()}
	for i := range r.outcomes {
		r.outcomes[i] = roaring.New()
	}
	return r
}

// CasesWith returns the indices of the cases whose expected outcome is o.
func (r *OpReport) CasesWith(o Outcome) *roaring.Bitmap {
	if o >= numOutcomes {
		return roaring.New()
	}
	return r.outcomes[o]
}

// MismatchedCases returns the indices of all cases that disagreed with the
// oracle, including those beyond the recorded mismatch cap.
func (r *OpReport) MismatchedCases() *roaring.Bitmap {
	return r.mismatched
}

func (r *OpReport) add(idx uint32, o Outcome, m *Mismatch, maxMismatches int) {
	r.Total++
	r.outcomes[o].Add(idx)
	if m == nil {
		return
	}
	r.MismatchCount++
	r.mismatched.Add(idx)
	if len(r.Mismatches) < maxMismatches {
		r.Mismatches = append(r.Mismatches, *m)
	}
}

func (r *OpReport) merge(o *OpReport, maxMismatches int) {
	r.Total += o.Total
	r.MismatchCount += o.MismatchCount
	for i := range r.outcomes {
		r.outcomes[i].Or(o.outcomes[i])
	}
	r.mismatched.Or(o.mismatched)
	for _, m := range o.Mismatches {
		if len(r.Mismatches) >= maxMismatches {
			break
		}
		r.Mismatches = append(r.Mismatches, m)
	}
}

// finish fills in the per-outcome counts from the case bitmaps.
func (r *OpReport) finish() {
	r.Counts = make(map[string]uint64, numOutcomes)
	for o, bm := range r.outcomes {
		if n := bm.GetCardinality(); n > 0 {
			r.Counts[Outcome(o).String()] = n
		}
	}
}

// Report is the result of verifying one integer representation.
type Report struct {
	Type    string        `json:"type" yaml:"type" cbor:"type"`
	Seed    int64         `json:"seed" yaml:"seed" cbor:"seed"`
	Ops     []*OpReport   `json:"ops" yaml:"ops" cbor:"ops"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed" cbor:"elapsed"`
}

// OK reports whether every case agreed with the oracle.
func (r *Report) OK() bool {
	for _, op := range r.Ops {
		if op.MismatchCount > 0 {
			return false
		}
	}
	return true
}

// Op returns the report for op, or nil if op was not verified.
func (r *Report) Op(op Op) *OpReport {
	for _, o := range r.Ops {
		if o.Op == op {
			return o
		}
	}
	return nil
}
