package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
	"github.com/SscSPs/smart_pocket/internal/dto"
	"github.com/SscSPs/smart_pocket/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(svc portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: svc}
}

// registerReceiptRoutes registers receipt routes under /transactions.
func registerReceiptRoutes(rg *gin.RouterGroup, svc portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(svc)

	receipts := rg.Group("/receipt")
	{
		receipts.POST("/parse", h.parseReceipt)
		receipts.POST("/add", h.addReceipt)
	}
	rg.GET("/orphans", h.listOrphanParents)
}

// parseReceipt godoc
// @Summary Parse receipt text
// @Description Extracts a receipt from raw text and matches it against ledger payees, accounts and categories. Extraction failures return an empty receipt carrying the raw text.
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseRawRequest true "Raw receipt text"
// @Success 200 {object} dto.ParsedReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Ledger unavailable"
// @Security BearerAuth
// @Router /transactions/receipt/parse [post]
func (h *receiptHandler) parseReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseRawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received request to parse receipt", slog.Int("raw_length", len(req.Raw)))
	receipt, err := h.receiptService.ParseReceipt(c.Request.Context(), req.Raw)
	if err != nil {
		respondWithError(c, logger, err, "Failed to parse receipt")
		return
	}

	c.JSON(http.StatusOK, dto.NewParsedReceiptResponse(receipt))
}

// addReceipt godoc
// @Summary Submit a reviewed receipt
// @Description Writes the receipt to the ledger as one transaction, or as a parent with one child per category.
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   request body dto.AddReceiptRequest true "Reviewed receipt"
// @Success 200 {object} dto.AddReceiptResponse
// @Failure 400 {object} dto.ErrorResponse "Incomplete receipt"
// @Failure 502 {object} dto.ErrorResponse "Ledger rejected the write"
// @Security BearerAuth
// @Router /transactions/receipt/add [post]
func (h *receiptHandler) addReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	submission, err := h.receiptService.AddReceipt(c.Request.Context(), req.Receipt)
	if err != nil {
		respondWithError(c, logger, err, "An error occurred while processing the receipt transaction")
		return
	}

	logger.Info("Receipt submitted",
		slog.String("transaction_id", submission.PrincipalID),
		slog.Int("children", submission.ChildCount))
	c.JSON(http.StatusOK, dto.AddReceiptResponse{Success: true, Data: true, TransactionID: submission.PrincipalID})
}

// listOrphanParents godoc
// @Summary List parent transactions without children
// @Description Finds split parents left behind by a failed child batch so they can be cleaned up by hand.
// @Tags receipts
// @Produce  json
// @Param   accountId query string true "Ledger account ID"
// @Param   date query string true "Transaction date (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse[[]domain.LedgerTransaction]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/orphans [get]
func (h *receiptHandler) listOrphanParents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.OrphanParentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid query for ListOrphanParents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	orphans, err := h.receiptService.FindOrphanParents(c.Request.Context(), q.AccountID, q.Date)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list orphan parent transactions")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[any]{Data: orphans})
}
