package port

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
)

// Valid port numbers.
const (
	MinPort = 1
	MaxPort = 65535
)

// Prober answers whether a port is currently free on this host.
type Prober interface {
	IsFree(port int) bool
}

// Scanner finds free ports with a Prober. Results are a point-in-time
// observation: another process may take a port before the caller binds it.
type Scanner struct {
	prober Prober
}

// NewScanner creates a Scanner. A nil prober uses the OS socket prober.
func NewScanner(p Prober) *Scanner {
	if p == nil {
		p = OSProber{}
	}
	return &Scanner{prober: p}
}

// FindFree returns every port in [start, end) the prober reports free,
// in ascending order.
func (s *Scanner) FindFree(start, end int) []int {
	free := make([]int, 0)
	for p := start; p < end; p++ {
		if s.prober.IsFree(p) {
			free = append(free, p)
		}
	}
	return free
}

// IsOpen reports whether port is in use, the negation of the free probe.
func (s *Scanner) IsOpen(port int) bool {
	return !s.prober.IsFree(port)
}

// FirstFree returns the lowest free port in [start, end).
func (s *Scanner) FirstFree(start, end int) (int, error) {
	for p := start; p < end; p++ {
		if s.prober.IsFree(p) {
			return p, nil
		}
	}
	return 0, errors.PortAllocationFailed(fmt.Errorf("no available ports in range %d-%d", start, end-1))
}

// FreeRanges summarises FindFree as contiguous ranges.
func (s *Scanner) FreeRanges(start, end int) iter.Seq[Range] {
	return Ranges(s.FindFree(start, end))
}

// Range is the half-open span [Start, End) of consecutive integers.
type Range struct {
	Start int
	End   int
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	return v >= r.Start && v < r.End
}

// Values expands the range back to its integers.
func (r Range) Values() []int {
	vals := make([]int, 0, r.Len())
	for v := r.Start; v < r.End; v++ {
		vals = append(vals, v)
	}
	return vals
}

// String renders the range with an inclusive upper bound, "8000-8003" or "8005".
func (r Range) String() string {
	if r.Len() == 1 {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End-1)
}

// Ranges compresses values into maximal runs of consecutive integers.
//
// values must be strictly ascending with no duplicates; this is not checked
// and other input produces meaningless ranges. Within a run, value minus
// index is constant, so runs are found by grouping equal offsets.
//
// The sequence is lazy. Each traversal starts over from values[0].
func Ranges(values []int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		t := 0
		for t < len(values) {
			offset := values[t] - t
			l := 1
			for t+l < len(values) && values[t+l]-(t+l) == offset {
				l++
			}
			if !yield(Range{Start: values[t], End: values[t] + l}) {
				return
			}
			t += l
		}
	}
}

// FormatRanges renders ranges as a comma separated list, "8000-8003,8005".
func FormatRanges(seq iter.Seq[Range]) string {
	var parts []string
	for r := range seq {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

// ValidateRange checks that [start, end) is a usable, non-empty port range.
func ValidateRange(start, end int) error {
	if start < MinPort || start > MaxPort {
		return errors.ValidationError(fmt.Sprintf("start port %d out of range %d-%d", start, MinPort, MaxPort))
	}
	if end <= start {
		return errors.ValidationError(fmt.Sprintf("end port %d must be greater than start port %d", end, start))
	}
	if end > MaxPort+1 {
		return errors.ValidationError(fmt.Sprintf("end port %d exceeds %d", end, MaxPort+1))
	}
	return nil
}
