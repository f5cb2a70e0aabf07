// Package lazy provides a composable, pull-based sequence pipeline over
// potentially unbounded sources.
//
// # What is a lazy sequence?
//
// A Seq is a value describing a chain of deferred transformations over a
// source of (key, value) pairs. Building the chain reads nothing:
//
//	evens := lazy.RangeFrom(1).
//		Filter(func(v, _ int) bool { return v%2 == 0 }).
//		Take(3)
//
// constructs three Seq values and zero elements. Work happens only when a
// terminal operation (Collect, First, Count, Each, ...) pulls, and early
// terminating operations stop pulling as soon as they can, so upstream side
// effects past the cut-off never run.
//
// # Replayability
//
// Every Seq is referentially replayable: traversing it twice restarts its
// producer from scratch. Sources that cannot restart, such as channels and
// pull cursors, are rejected at construction with ErrSingleUseSource. When
// re-running the upstream is expensive or side-effecting, Remember wraps
// the sequence in a memoizing cache adapter so all traversals share one
// upstream pass.
//
// # Evaluation model
//
// Evaluation is single-threaded and cooperative: suspension happens at each
// combinator's yield point, driven entirely by the consumer. The engine adds
// no locking and no parallelism; consumers on multiple goroutines must
// serialize externally.
//
// Operations that are not worth doing lazily, like stable multi-key sort and
// random sampling, drain into the eager collection package, run there, and
// wrap the result back into a Seq.
package lazy
