package logging

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/allanhanan/duvc-ctl/core"
)

var (
	statsMu     sync.Mutex
	errorCounts = make(map[core.ErrorCode]uint64)
	totalOps    uint64
	totalErrs   uint64
)

// RecordOperation updates the running statistics with the outcome of one
// operation; code is core.Success for a successful call.
func RecordOperation(code core.ErrorCode) {
	atomic.AddUint64(&totalOps, 1)
	if code == core.Success {
		return
	}
	atomic.AddUint64(&totalErrs, 1)

	statsMu.Lock()
	errorCounts[code]++
	statsMu.Unlock()
}

// ResetStatistics zeroes every counter.
func ResetStatistics() {
	atomic.StoreUint64(&totalOps, 0)
	atomic.StoreUint64(&totalErrs, 0)
	statsMu.Lock()
	errorCounts = make(map[core.ErrorCode]uint64)
	statsMu.Unlock()
}

// StatisticsText renders the running counters as the flat
// "Total Operations / Total Errors / per-code breakdown" report.
func StatisticsText() string {
	ops := atomic.LoadUint64(&totalOps)
	errs := atomic.LoadUint64(&totalErrs)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error Statistics:\n================\n")
	fmt.Fprintf(&sb, "Total Operations: %d\n", ops)
	fmt.Fprintf(&sb, "Total Errors: %d\n", errs)
	if ops > 0 {
		success := float64(ops-errs) / float64(ops) * 100
		failure := float64(errs) / float64(ops) * 100
		fmt.Fprintf(&sb, "Success Rate: %.2f%%\n", success)
		fmt.Fprintf(&sb, "Error Rate: %.2f%%\n", failure)
	}

	statsMu.Lock()
	defer statsMu.Unlock()
	if len(errorCounts) > 0 {
		fmt.Fprintf(&sb, "\nDetailed Error Breakdown:\n========================\n")
		for code, count := range errorCounts {
			pct := 0.0
			if errs > 0 {
				pct = float64(count) / float64(errs) * 100
			}
			fmt.Fprintf(&sb, "%s: %d (%.1f%%)\n", code.String(), count, pct)
		}
	}
	return sb.String()
}

// StatisticsJSON renders the same counters for the C surface's buffer-
// sizing getter, which prefers a structured form over the flat text.
func StatisticsJSON() string {
	ops := atomic.LoadUint64(&totalOps)
	errs := atomic.LoadUint64(&totalErrs)

	statsMu.Lock()
	defer statsMu.Unlock()

	var sb strings.Builder
	sb.WriteString("{")
	fmt.Fprintf(&sb, `"total_operations":%d,"total_errors":%d,"by_code":{`, ops, errs)
	first := true
	for code, count := range errorCounts {
		if !first {
			sb.WriteString(",")
		}
		first = false
		fmt.Fprintf(&sb, `"%s":%d`, code.String(), count)
	}
	sb.WriteString("}}")
	return sb.String()
}
