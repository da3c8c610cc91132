// Package condition repairs a region world after it was built from an
// initial colouring.
//
// 🚀 What is conditioning?
//
//	Raw colourings leave defects behind: one colour covering two separate
//	patches of water, thin strands of water dangling off a larger body, and
//	lone water cells wedged between other regions. The Conditioner walks the
//	regions in passes and fixes them with the region package's surgery
//	primitives (Split, Redistribute, Merge).
//
// ✨ One pass, per region in ascending id order:
//
//   - single-cell water region: queued for pruning, unless every bordering
//     region is water (a deliberate lake);
//   - multi-cell water region: a disconnected fragment is split off, then
//     SearchForBridges finds limbs and each limb is resolved;
//   - land and empty regions are left alone (empty ones are logged).
//
// Afterwards the prune queue is drained: each singleton is folded into a
// neighbouring region by redistribution or merge. The regions touched by a
// pass form the input of the next one.
//
// ⚙️ Options:
//
//	WithMaxIterations(n)  pass budget, default 4
//	WithSmallRegion(n)    size gate for limbs and pruning, default 3
//	WithLogger(l)         zap logger, default no-op
//	WithRecorder(r)       pass/surgery observer, e.g. metrics.Recorder
//	WithContext(ctx)      cancellation, checked before every pass
//
// One-cell tips that would only be handed back (no other water region to go
// to, or arriving as a tip of the receiver) stay where they are. Convergence
// is still not guaranteed on contested borders. Run therefore reports a
// Result with Status Converged or IterationLimitReached (plus the pending
// region ids) instead of failing. Errors are reserved for bad input,
// cancellation and surgery failures such as palette exhaustion.
//
// Usage:
//
//	res, err := condition.New(condition.WithLogger(log)).Run(world)
//	if err != nil { ... }
//	if res.Status != condition.Converged { ... best-effort world ... }
package condition
