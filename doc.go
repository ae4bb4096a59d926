// Package dynarr implements a growable array tuned for work near both
// ends.
//
// # Overview
//
// A plain slice pays an O(n) shift every time the front element is
// removed. dynarr keeps a "deadzone" of removed-but-allocated slots in
// front of the live elements instead, so front removal can be a counter
// update, and later front insertions consume that slack before anything
// has to move. This is particularly useful for:
//
//   - FIFO queues that also need random access
//   - Work lists that are edited close to either end
//   - Batches of fixed-width records handled as raw bytes
//
// # Basic Usage
//
//	a := dynarr.New[int]()
//	defer a.Release()
//
//	a.BulkAppend([]int{1, 2, 3, 4, 5})
//	first := a.Precate()      // 1, moves the rest down
//	second := a.QuickPrecate() // 2, O(1), Deadzone() == 1
//	a.Prepend(0)              // consumes the deadzone, nothing moves
//	a.Trim()                  // Cap() == Len(), Deadzone() == 0
//
// Fixed-width byte records use Blob:
//
//	b := dynarr.NewBlob(4)
//	b.Append([]byte{1, 0, 0, 0})
//
// # Memory Layout
//
// One buffer holds Cap() element slots:
//
//	[ deadzone | live elements | back slack ]
//
// Logical index i lives at slot i + Deadzone(). Growth sets the capacity
// to cap + cap/2 + 1; ordinary removals give back half of the back slack.
// Quick removals never shrink. Trim is the only operation that always
// leaves Cap() == Len() and Deadzone() == 0.
//
// # Errors
//
// Out-of-range indexes, bulk ranges running past the end, removal from
// an empty array and non-positive explicit sizes are caller bugs. By
// default they panic with a *ContractViolation. WithPolicy(PolicyAbort)
// logs the diagnostic through zap and terminates the process instead.
// Try and SafeArray turn panics into returned errors.
//
// Bounds checks can be switched off with Unchecked(). An out-of-range
// index then reads or writes slack slots without complaint, so this mode
// is only for code that is known to be correct.
//
// # Thread Safety
//
// None of the types in this package are safe for concurrent use.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Deadzone: %d slots\n", m.Deadzone)
package dynarr
