package hunt

import "fmt"

// errNoCandidate describes a region that did not look enough like a
// table to continue down the pipeline. No function returns it: the
// pipeline reports that outcome as ok=false, and Hunt treats it as
// "nothing to do here," not as a failure.
var errNoCandidate = fmt.Errorf("hunt: region is not a table candidate")

// invariant panics if cond is false. It marks a structural inconsistency
// in the block tree handed to the engine — a programming error in the
// segmentation layer upstream of Hunt, not a recoverable runtime
// condition (spec §7).
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("hunt: invariant violated: "+format, args...))
	}
}
