package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"backoffice/internal/adapters/out/catalogyaml"
	"backoffice/internal/adapters/out/memory/draftstore"
	"backoffice/internal/adapters/out/memory/historyrepo"
	"backoffice/internal/adapters/out/printengine"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/printing"
	"backoffice/internal/core/ports"
)

// CompositionRoot wires adapters into use-case handlers. All shared state of
// the application (the session draft, the order history, the print coordinator)
// lives here as singletons; handlers are cheap and created per request.
type CompositionRoot struct {
	catalog          *catalogyaml.Repository
	drafts           *draftstore.Store
	history          *historyrepo.Repository
	ids              *kernel.OrderIDGenerator
	company          invoice.Company
	printCoordinator *printing.Coordinator
	logger           *slog.Logger
}

// NewCompositionRoot builds the application graph from configuration.
// printOut is where finished print jobs are written.
func NewCompositionRoot(config Config, printOut io.Writer, logger *slog.Logger) (*CompositionRoot, error) {
	catalog, err := catalogyaml.NewRepository(config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	company := invoice.Company{
		Name:    config.CompanyName,
		Address: config.CompanyAddress,
		Phone:   config.CompanyPhone,
		Email:   config.CompanyEmail,
	}

	printConfig := ports.PrintConfig{
		DocumentTitle: config.PrintDocumentTitle,
		PageSize:      config.PrintPageSize,
		Margins:       config.PrintMargins,
	}

	return &CompositionRoot{
		catalog:          catalog,
		drafts:           draftstore.NewStore(),
		history:          historyrepo.NewRepository(),
		ids:              kernel.NewOrderIDGenerator(),
		company:          company,
		printCoordinator: printing.NewCoordinator(printengine.NewEngine(printOut), printConfig, logger),
		logger:           logger,
	}, nil
}

// PrintCoordinator exposes the shared coordinator for the HTTP adapter and
// the background jobs.
func (c *CompositionRoot) PrintCoordinator() *printing.Coordinator {
	return c.printCoordinator
}

func (c *CompositionRoot) CreateSetCustomerInfoCommandHandler() commands.SetCustomerInfoCommandHandler {
	return commands.NewSetCustomerInfoCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateStageCandidateCommandHandler() commands.StageCandidateCommandHandler {
	return commands.NewStageCandidateCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateAddCandidateCommandHandler() commands.AddCandidateCommandHandler {
	return commands.NewAddCandidateCommandHandler(c.drafts, c.catalog)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.drafts,
		c.history,
		c.ids,
		c.company,
		c.printCoordinator,
		c.logger,
	)
}

func (c *CompositionRoot) CreateFilterProductsQueryHandler() queries.FilterProductsQueryHandler {
	return queries.NewFilterProductsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.drafts)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.history)
}

func (c *CompositionRoot) CreateRenderInvoiceQueryHandler() queries.RenderInvoiceQueryHandler {
	return queries.NewRenderInvoiceQueryHandler(c.history, c.company)
}
