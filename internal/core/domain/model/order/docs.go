// Package order models the two lifecycle phases of an order.
//
// Draft is the mutable aggregate the builder composes: customer info, unique
// line items with frozen product snapshots, and the staged candidate pair.
// Submitted is the immutable record a draft freezes into when the submission
// pipeline accepts it, with assigned identity, frozen total, and timestamp.
//
// The split is intentional: drafts exist only while composing and are owned by
// the session workflow, submitted orders are owned by the append-only history.
package order
