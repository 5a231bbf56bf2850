package cmd

import "time"

type Config struct {
	HTTPPort            string
	CatalogPath         string
	CompanyName         string
	CompanyAddress      string
	CompanyPhone        string
	CompanyEmail        string
	PrintDocumentTitle  string
	PrintPageSize       string
	PrintMargins        string
	PrintPendingTimeout time.Duration
}
