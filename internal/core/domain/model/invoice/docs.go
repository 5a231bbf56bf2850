// Package invoice derives printable invoice documents from submitted orders.
// Rendering is a pure projection: the document is recomputed on demand, verifies
// the frozen total against its own line arithmetic, and degrades to a placeholder
// when the order is absent or incomplete.
package invoice
