package printing

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the print lifecycle state of the coordinator.
// It implements a state machine with defined transitions so the print engine is
// never invoked before the invoice document is guaranteed paintable.
//
// State transitions:
//
//	Idle ──> DocumentReady ──> PrintRequested ──> Idle
//	  ^                                            │
//	  └────────────(completion or failure)─────────┘
//
// Entering DocumentReady requires the presentation layer to have confirmed the
// document materialized; that barrier is enforced by the Coordinator, the Status
// only validates the transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Idle means no print activity is in flight. A rendered document may still be
	// held for manual reprint.
	Idle

	// DocumentReady means the presentation layer confirmed the invoice document
	// is materialized and paintable, so printing may be requested.
	DocumentReady

	// PrintRequested means the print engine has been invoked and the coordinator
	// is waiting for its completion or failure callback.
	PrintRequested
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Idle:           "Idle",
		DocumentReady:  "DocumentReady",
		PrintRequested: "PrintRequested",
	}
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid print status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid print status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkReady transitions the status to DocumentReady.
//
// Valid transitions:
//   - Idle -> DocumentReady (document painted)
//   - DocumentReady -> DocumentReady (repeated paint notification is idempotent)
func (s Status) MarkReady() (Status, error) {
	if s != Idle && s != DocumentReady {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark the document ready", s))
	}
	return DocumentReady, nil
}

// Request transitions the status to PrintRequested.
// Only DocumentReady allows requesting a print: the barrier must have released.
func (s Status) Request() (Status, error) {
	if s != DocumentReady {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to request printing", s))
	}
	return PrintRequested, nil
}

// Finish transitions the status back to Idle once the in-flight print completed
// or failed. Both outcomes release the machine the same way; the failure path
// additionally surfaces the error to the user-facing layer.
func (s Status) Finish() (Status, error) {
	if s != PrintRequested {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to finish printing", s))
	}
	return Idle, nil
}
