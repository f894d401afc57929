// Package reconcile provides the container reconciliation engine: it merges,
// orders and repacks the stacks of a slotted container (a chest) without
// changing the total quantity of any distinct item variant.
//
// # Architecture
//
// The engine consists of five components, leaf-first:
//
//  1. Canonicalize: derives a deterministic CanonicalKey for a stack from its base
//     type, sub-variant and a whitelist of metadata fields. Lists whose order
//     carries no meaning (enchantments, potion effects) are sorted, nested
//     objects are serialized with sorted keys.
//  2. Merge / Redistribute: aggregate quantities per key, then pack them back
//     into slots honoring each variant's maximum stack size.
//  3. Order: the alpha, count and type ordering policies.
//  4. Verify / Rollback: compare the pre- and post-write contents as a multiset
//     keyed by canonical key and restore the original layout on any mismatch.
//  5. Container: the narrow adapter interface the engine reads and writes through.
//
// # Protocol
//
// Engine.Reconcile runs Plan (read + compute), Commit (clear, write, commit
// point) and Check (re-read + verify). When Check reports a discrepancy or any
// write fails, the original snapshot is written back slot-for-slot. A container
// therefore ends each invocation either sorted and verified or unchanged.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(logger, reconcile.NewLogSink(logger, func() bool { return true }))
//	res := engine.Reconcile(ctx, container, reconcile.Config{Mode: reconcile.ModeCount})
//	if !res.Success {
//		fmt.Println(reconcile.Feedback(res))
//	}
//
// Callers must not run two reconciliations on the same container at once.
package reconcile
