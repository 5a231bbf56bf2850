// Package commands contains the business operations that modify workflow state:
// staging and adding candidate items, maintaining the draft customer block,
// removing line items, and submitting the draft into history. Each command
// follows a consistent pattern: constructor-guarded command value, validation,
// then delegation to the domain aggregate through the boundary ports.
package commands

import "backoffice/internal/core/domain/model/invoice"

// PrintNotifier receives the invoice document of a freshly submitted order so
// the print coordinator can arm its auto-print trigger. Submission must succeed
// independently of printing, so notification failures are logged, not returned.
type PrintNotifier interface {
	OrderSubmitted(doc invoice.Document) error
}
