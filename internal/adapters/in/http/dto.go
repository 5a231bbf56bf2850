package http

import (
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerInfo is the request body for updating the draft's customer block.
type CustomerInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Candidate is the request body for staging a product-quantity pair.
type Candidate struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Product is one catalog entry in search responses.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Supplier string `json:"supplier"`
}

// LineItem is one order entry with its frozen snapshot fields.
type LineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Supplier  string `json:"supplier"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Draft is the view of the in-progress order.
type Draft struct {
	CustomerName    string     `json:"customerName"`
	CustomerContact string     `json:"customerContact"`
	Items           []LineItem `json:"items"`
	Candidate       Candidate  `json:"candidate"`
	Total           string     `json:"total"`
}

// SubmittedOrder is the frozen order returned by a successful submission.
type SubmittedOrder struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customerName"`
	CustomerContact string     `json:"customerContact"`
	Items           []LineItem `json:"items"`
	Total           string     `json:"total"`
	SubmittedAt     time.Time  `json:"submittedAt"`
}

// HistoryRow is one row of the order history listing.
type HistoryRow struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Total        string    `json:"total"`
	ItemCount    int       `json:"itemCount"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// Company is the issuing company block of an invoice.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// InvoiceLine is one itemized row of an invoice.
type InvoiceLine struct {
	Name      string `json:"name"`
	Supplier  string `json:"supplier"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Invoice is the printable projection of a submitted order. A non-renderable
// invoice carries only the note.
type Invoice struct {
	Renderable      bool          `json:"renderable"`
	Note            string        `json:"note,omitempty"`
	Company         Company       `json:"company"`
	OrderID         string        `json:"orderId"`
	CustomerName    string        `json:"customerName"`
	CustomerContact string        `json:"customerContact"`
	Lines           []InvoiceLine `json:"lines"`
	GrandTotal      string        `json:"grandTotal"`
	GeneratedAt     time.Time     `json:"generatedAt"`
	Footer          string        `json:"footer"`
}

// PrintState reports the coordinator's lifecycle state.
type PrintState struct {
	Status string `json:"status"`
}

func moneyString(m kernel.Money) string {
	return m.Amount().StringFixed(2)
}

func toProductDTO(product catalog.Product) Product {
	return Product{
		ID:       product.ID(),
		Name:     product.Name(),
		Price:    moneyString(product.Price()),
		Supplier: product.Supplier(),
	}
}

func toLineItemDTO(item order.LineItem) LineItem {
	return LineItem{
		ProductID: item.ProductID(),
		Name:      item.Name(),
		Supplier:  item.Supplier(),
		Price:     moneyString(item.Price()),
		Quantity:  item.Quantity(),
		Subtotal:  moneyString(item.Subtotal()),
	}
}

func toLineItemDTOs(items []order.LineItem) []LineItem {
	dtos := make([]LineItem, len(items))
	for i, item := range items {
		dtos[i] = toLineItemDTO(item)
	}
	return dtos
}

func toDraftDTO(view queries.GetDraftQueryResponse) Draft {
	return Draft{
		CustomerName:    view.CustomerName,
		CustomerContact: view.CustomerContact,
		Items:           toLineItemDTOs(view.Items),
		Candidate: Candidate{
			ProductID: view.Candidate.ProductID(),
			Quantity:  view.Candidate.Quantity(),
		},
		Total: moneyString(view.Total),
	}
}

func toSubmittedOrderDTO(submitted *order.Submitted) SubmittedOrder {
	return SubmittedOrder{
		ID:              submitted.ID().String(),
		CustomerName:    submitted.CustomerName(),
		CustomerContact: submitted.CustomerContact(),
		Items:           toLineItemDTOs(submitted.Items()),
		Total:           moneyString(submitted.Total()),
		SubmittedAt:     submitted.SubmittedAt(),
	}
}

func toInvoiceDTO(doc invoice.Document) Invoice {
	if !doc.Renderable {
		return Invoice{Renderable: false, Note: doc.Note}
	}

	lines := make([]InvoiceLine, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = InvoiceLine{
			Name:      line.Name,
			Supplier:  line.Supplier,
			UnitPrice: moneyString(line.UnitPrice),
			Quantity:  line.Quantity,
			Subtotal:  moneyString(line.Subtotal),
		}
	}

	return Invoice{
		Renderable: true,
		Company: Company{
			Name:    doc.Company.Name,
			Address: doc.Company.Address,
			Phone:   doc.Company.Phone,
			Email:   doc.Company.Email,
		},
		OrderID:         doc.OrderID.String(),
		CustomerName:    doc.CustomerName,
		CustomerContact: doc.CustomerContact,
		Lines:           lines,
		GrandTotal:      moneyString(doc.GrandTotal),
		GeneratedAt:     doc.GeneratedAt,
		Footer:          doc.Footer,
	}
}
