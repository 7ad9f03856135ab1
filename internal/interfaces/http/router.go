package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Khosrovf/Khosro8/internal/application/auth"
	"github.com/Khosrovf/Khosro8/internal/application/ledger"
	"github.com/Khosrovf/Khosro8/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *ledger.ItemUseCase
	TransactionUC *ledger.TransactionUseCase
	ReportUC      *report.ReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)

	// Transactions (protegido)
	txGroup := protected.Group("/transactions")
	txHandler := NewTransactionHandler(deps.TransactionUC)
	txGroup.Post("/", txHandler.Record)
	txGroup.Get("/", txHandler.List)
	txGroup.Post("/:id/void", txHandler.Void)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/stock.xlsx", reportHandler.StockExcel)
	reports.Get("/transactions", reportHandler.Transactions)
	reports.Get("/transactions.xlsx", reportHandler.TransactionsExcel)
	reports.Get("/transactions.pdf", reportHandler.TransactionsPDF)
}
