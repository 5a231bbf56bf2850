// Package printengine implements the print engine port by rendering invoice
// documents to a writer. Real print-driver integration is out of scope; this
// adapter is the boundary the coordinator invokes, and in production it writes
// the formatted document to the configured sink (stdout by default).
package printengine

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/template"

	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/ports"
)

const documentTemplate = `=== {{.Config.DocumentTitle}} ===
page: {{.Config.PageSize}}, margins: {{.Config.Margins}}

{{with .Doc.Company}}{{.Name}}
{{.Address}}
{{.Phone}} | {{.Email}}
{{end}}
order:    {{.Doc.OrderID}}
customer: {{.Doc.CustomerName}} ({{.Doc.CustomerContact}})
date:     {{.Doc.GeneratedAt.Format "2006-01-02 15:04:05"}}

{{range .Doc.Lines}}{{.Name}} | {{.Supplier}} | {{.UnitPrice}} x {{.Quantity}} = {{.Subtotal}}
{{end}}
TOTAL: {{.Doc.GrandTotal}}

{{.Doc.Footer}}
`

// Engine writes formatted invoice documents to a sink. It is safe for
// concurrent use; jobs are serialized so two documents never interleave.
type Engine struct {
	mu   sync.Mutex
	out  io.Writer
	tmpl *template.Template
}

// NewEngine creates an engine writing to out.
func NewEngine(out io.Writer) *Engine {
	return &Engine{
		out:  out,
		tmpl: template.Must(template.New("invoice").Parse(documentTemplate)),
	}
}

// Print formats the document and writes it to the sink. A placeholder document
// is rejected: only renderable invoices reach the engine.
func (e *Engine) Print(ctx context.Context, doc invoice.Document, cfg ports.PrintConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !doc.Renderable {
		return fmt.Errorf("refusing to print a non-renderable document")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	data := struct {
		Doc    invoice.Document
		Config ports.PrintConfig
	}{Doc: doc, Config: cfg}

	if err := e.tmpl.Execute(e.out, data); err != nil {
		return fmt.Errorf("write invoice document: %w", err)
	}

	return nil
}
