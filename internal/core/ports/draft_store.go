package ports

import "backoffice/internal/core/domain/model/order"

// DraftStore owns the single in-progress draft of the session. Handlers obtain
// the draft through the store and mutate it via its aggregate methods; resetting
// after a successful submission is the caller's responsibility, not the
// submission pipeline's.
type DraftStore interface {
	// Draft returns the session draft, creating an empty one on first use.
	Draft() *order.Draft
}
