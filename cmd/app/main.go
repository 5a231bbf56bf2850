package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"backoffice/cmd"
	"backoffice/internal/adapters/in/http"
	"backoffice/internal/core/domain/model/printing"
	"backoffice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, os.Stdout, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	app.PrintCoordinator().SetErrorListener(func(err *printing.PrintEngineError) {
		logger.Error("Print job failed", "jobID", err.JobID, "error", err.Cause)
	})

	jobManager := jobs.NewJobManager(app.PrintCoordinator(), configs.PrintPendingTimeout, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		CatalogPath:         goDotEnvVariable("CATALOG_PATH"),
		CompanyName:         goDotEnvVariable("COMPANY_NAME"),
		CompanyAddress:      goDotEnvVariable("COMPANY_ADDRESS"),
		CompanyPhone:        goDotEnvVariable("COMPANY_PHONE"),
		CompanyEmail:        goDotEnvVariable("COMPANY_EMAIL"),
		PrintDocumentTitle:  goDotEnvVariable("PRINT_DOCUMENT_TITLE"),
		PrintPageSize:       goDotEnvVariable("PRINT_PAGE_SIZE"),
		PrintMargins:        goDotEnvVariable("PRINT_MARGINS"),
		PrintPendingTimeout: goDotEnvDuration("PRINT_PENDING_TIMEOUT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvDuration(key string) time.Duration {
	value := goDotEnvVariable(key)
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return duration
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateSetCustomerInfoCommandHandler(),
		app.CreateStageCandidateCommandHandler(),
		app.CreateAddCandidateCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateFilterProductsQueryHandler(),
		app.CreateGetDraftQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateRenderInvoiceQueryHandler(),
		app.PrintCoordinator(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
