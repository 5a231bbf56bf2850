package printing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/ports"

	"github.com/google/uuid"
)

var (
	// ErrPrintEngineFailed is the unwrap target of every PrintEngineError.
	ErrPrintEngineFailed = errors.New("print engine failed")

	// ErrNoDocumentToPrint indicates a print-related event arrived while no
	// renderable invoice document was held by the coordinator.
	ErrNoDocumentToPrint = errors.New("no invoice document to print")

	// ErrDocumentIsNotRenderable indicates a placeholder document was handed to
	// the coordinator; placeholders must never reach the print engine.
	ErrDocumentIsNotRenderable = errors.New("document is not renderable")

	// ErrPrintAlreadyRequested indicates a print is already in flight.
	ErrPrintAlreadyRequested = errors.New("a print request is already in flight")

	// errPrintTimedOut marks a job failed by the pending-timeout sweep.
	errPrintTimedOut = errors.New("print request exceeded the pending timeout")
)

// PrintEngineError reports an external print failure. The order data is
// preserved by the coordinator, so the user may retry printing manually.
type PrintEngineError struct {
	JobID uuid.UUID
	Cause error
}

func (e *PrintEngineError) Error() string {
	return fmt.Sprintf("%s: job %s (cause: %s)", ErrPrintEngineFailed, e.JobID, e.Cause)
}

func (e *PrintEngineError) Unwrap() error {
	return ErrPrintEngineFailed
}

// ErrorListener receives print failures for the user-facing layer.
// Errors are surfaced, never swallowed.
type ErrorListener func(err *PrintEngineError)

// Coordinator sequences "document materialized" with "print engine invoked".
//
// It is driven by discrete events rather than elapsed wall-clock time:
//
//   - OrderSubmitted arms the auto-print trigger and holds the freshly rendered
//     document while the machine stays Idle. The engine must not fire yet: the
//     presentation layer has not confirmed the document is paintable.
//   - DocumentPainted releases the readiness barrier, moving Idle to
//     DocumentReady, and fires the armed auto-print.
//   - RequestPrint is the manual trigger. Because the user can only press print
//     on a document that is already rendered and stable, it bypasses the paint
//     barrier and supersedes a pending auto-print.
//   - completion and failure callbacks return the machine to Idle. The document
//     is retained so a failed or finished job can be reprinted manually.
//
// Every engine invocation carries a unique job id; callbacks for a superseded or
// timed-out job are ignored. The coordinator is safe for concurrent use, which
// keeps the timeout sweep and the presentation layer from racing each other.
type Coordinator struct {
	mu sync.Mutex

	engine ports.PrintEngine
	config ports.PrintConfig
	logger *slog.Logger

	status      Status
	doc         invoice.Document
	hasDoc      bool
	autoPrint   bool
	jobID       uuid.UUID
	requestedAt time.Time

	onError ErrorListener
	now     func() time.Time
}

// NewCoordinator creates an idle coordinator bound to a print engine and its
// job configuration.
func NewCoordinator(engine ports.PrintEngine, config ports.PrintConfig, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		engine: engine,
		config: config,
		logger: logger.With("component", "print_coordinator"),
		status: Idle,
		now:    time.Now,
	}
}

// SetErrorListener registers the user-facing error sink. Print failures are
// always logged; with a listener registered they are also pushed to it.
func (c *Coordinator) SetErrorListener(listener ErrorListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = listener
}

// Status returns the current lifecycle state.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Document returns the currently held invoice document, if any.
func (c *Coordinator) Document() (invoice.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc, c.hasDoc
}

// OrderSubmitted installs the invoice document of a freshly submitted order and
// arms the auto-print trigger. The machine stays Idle until DocumentPainted
// releases the barrier.
//
// Fails with ErrPrintAlreadyRequested while a print is in flight and with
// ErrDocumentIsNotRenderable for a placeholder document.
func (c *Coordinator) OrderSubmitted(doc invoice.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == PrintRequested {
		return ErrPrintAlreadyRequested
	}

	if !doc.Renderable {
		return ErrDocumentIsNotRenderable
	}

	c.doc = doc
	c.hasDoc = true
	c.autoPrint = true
	c.status = Idle

	c.logger.Info("order submitted, awaiting document paint",
		"order_id", doc.OrderID.String())
	return nil
}

// DocumentPainted releases the readiness barrier: the presentation layer has
// confirmed the invoice document materialized. If an auto-print is armed the
// engine is invoked now.
func (c *Coordinator) DocumentPainted(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasDoc {
		return ErrNoDocumentToPrint
	}

	// a paint notification while a print is in flight is benign: the barrier
	// was already released for this document
	if c.status == PrintRequested {
		return nil
	}

	newStatus, err := c.status.MarkReady()
	if err != nil {
		return err
	}
	c.status = newStatus

	if !c.autoPrint {
		return nil
	}
	c.autoPrint = false

	return c.invokeLocked(ctx)
}

// RequestPrint is the manual, user-triggered print. The document is already
// rendered and stable, so the paint barrier is bypassed and any pending
// auto-print is superseded.
func (c *Coordinator) RequestPrint(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasDoc {
		return ErrNoDocumentToPrint
	}

	if c.status == PrintRequested {
		return ErrPrintAlreadyRequested
	}

	// supersede a pending auto-print: the manual request wins
	c.autoPrint = false

	if c.status == Idle {
		c.status = DocumentReady
	}

	return c.invokeLocked(ctx)
}

// ExpireStale fails an in-flight print request that has been pending longer than
// maxPending. It gives the coordinator the upper-bound delay the workflow
// promises: no print request waits forever for an engine that went silent.
func (c *Coordinator) ExpireStale(maxPending time.Duration) {
	c.mu.Lock()
	jobID := c.jobID
	stale := c.status == PrintRequested && c.now().Sub(c.requestedAt) > maxPending
	c.mu.Unlock()

	if stale {
		c.printFailed(jobID, errPrintTimedOut)
	}
}

// invokeLocked transitions to PrintRequested and starts the engine call.
// Caller must hold c.mu.
func (c *Coordinator) invokeLocked(ctx context.Context) error {
	newStatus, err := c.status.Request()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.jobID = uuid.New()
	c.requestedAt = c.now()

	doc := c.doc
	jobID := c.jobID

	c.logger.Info("print requested",
		"job_id", jobID.String(), "order_id", doc.OrderID.String())

	// the job must outlive the request that triggered it: the caller's context
	// is cancelled the moment its handler returns, and that is not an engine
	// fault. The pending-timeout sweep bounds the detached job instead.
	jobCtx := context.WithoutCancel(ctx)

	go func() {
		if printErr := c.engine.Print(jobCtx, doc, c.config); printErr != nil {
			c.printFailed(jobID, printErr)
			return
		}
		c.printCompleted(jobID)
	}()

	return nil
}

// printCompleted handles the engine completion callback for a job.
func (c *Coordinator) printCompleted(jobID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != PrintRequested || c.jobID != jobID {
		// a superseded or timed-out job finished late; nothing to do
		return
	}

	newStatus, err := c.status.Finish()
	if err != nil {
		return
	}
	c.status = newStatus
	c.autoPrint = false

	c.logger.Info("print completed", "job_id", jobID.String())
}

// printFailed handles the engine failure callback for a job: the error is
// logged, surfaced to the listener, and the machine returns to Idle with the
// document retained for a manual retry.
func (c *Coordinator) printFailed(jobID uuid.UUID, cause error) {
	c.mu.Lock()

	if c.status != PrintRequested || c.jobID != jobID {
		c.mu.Unlock()
		return
	}

	newStatus, err := c.status.Finish()
	if err != nil {
		c.mu.Unlock()
		return
	}
	c.status = newStatus
	c.autoPrint = false

	engineErr := &PrintEngineError{JobID: jobID, Cause: cause}
	listener := c.onError
	c.mu.Unlock()

	c.logger.Error("print failed", "job_id", jobID.String(), "error", cause)
	if listener != nil {
		listener(engineErr)
	}
}
