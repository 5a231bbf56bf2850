package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"backoffice/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is a value object identifying a submitted order. Its string form is
// "ORD-<unix-millis>-<seq>", which keeps identifiers monotonically orderable by
// submission time while the sequence segment disambiguates submissions landing on
// the same millisecond. The millis segment doubles as the order date for display.
//
// The zero value is invalid; identifiers are issued by OrderIDGenerator.
type OrderID struct {
	millis int64
	seq    uint64
}

// OrderIDFromString parses an OrderID from its "ORD-<millis>-<seq>" form.
// Returns an error for any other shape.
func OrderIDFromString(s string) (OrderID, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != "ORD" {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not match ORD-<millis>-<seq>", s))
	}

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	seq, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	if millis <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid timestamp", millis))
	}

	return OrderID{millis: millis, seq: seq}, nil
}

// Validate ensures the OrderID carries an issued timestamp.
func (id OrderID) Validate() error {
	if id.millis <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// Time returns the submission instant encoded in the identifier.
func (id OrderID) Time() time.Time {
	return time.UnixMilli(id.millis)
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.millis == other.millis && id.seq == other.seq
}

// String returns the canonical "ORD-<millis>-<seq>" form.
func (id OrderID) String() string {
	return fmt.Sprintf("ORD-%d-%d", id.millis, id.seq)
}

// OrderIDGenerator issues process-unique, monotonically orderable OrderIDs.
//
// The wall clock supplies the millis segment; a counter increments whenever two
// consecutive identifiers would share a millisecond, so rapid successive
// submissions can never collide. A clock that steps backwards is clamped to the
// last issued millisecond for the same reason.
//
// The generator is safe for concurrent use.
type OrderIDGenerator struct {
	mu         sync.Mutex
	now        func() time.Time
	lastMillis int64
	lastSeq    uint64
}

// NewOrderIDGenerator creates a generator backed by the system clock.
func NewOrderIDGenerator() *OrderIDGenerator {
	return &OrderIDGenerator{now: time.Now}
}

// NewOrderIDGeneratorWithClock creates a generator backed by a custom clock.
// Used by tests to pin the timestamp segment.
func NewOrderIDGeneratorWithClock(now func() time.Time) *OrderIDGenerator {
	return &OrderIDGenerator{now: now}
}

// Next issues the next identifier.
func (g *OrderIDGenerator) Next() OrderID {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis < g.lastMillis {
		millis = g.lastMillis
	}

	if millis == g.lastMillis {
		g.lastSeq++
	} else {
		g.lastMillis = millis
		g.lastSeq = 0
	}

	return OrderID{millis: g.lastMillis, seq: g.lastSeq}
}
