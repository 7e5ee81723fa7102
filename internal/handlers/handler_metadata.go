package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
	"github.com/SscSPs/smart_pocket/internal/dto"
	"github.com/SscSPs/smart_pocket/internal/middleware"
	"github.com/gin-gonic/gin"
)

type metadataHandler struct {
	metadataService portssvc.MetadataSvcFacade
}

func registerMetadataRoutes(rg *gin.RouterGroup, svc portssvc.MetadataSvcFacade) {
	h := &metadataHandler{metadataService: svc}

	rg.GET("/payees", h.listPayees)
	rg.GET("/accounts", h.listAccounts)
	rg.GET("/grouped-categories", h.listGroupedCategories)
}

// listPayees godoc
// @Summary List ledger payees
// @Tags metadata
// @Produce  json
// @Success 200 {object} dto.DataResponse[[]domain.Payee]
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /metadata/payees [get]
func (h *metadataHandler) listPayees(c *gin.Context) {
	payees, err := h.metadataService.ListPayees(c.Request.Context())
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list payees")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[any]{Data: payees})
}

// listAccounts godoc
// @Summary List ledger accounts
// @Tags metadata
// @Produce  json
// @Success 200 {object} dto.DataResponse[[]domain.Account]
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /metadata/accounts [get]
func (h *metadataHandler) listAccounts(c *gin.Context) {
	accounts, err := h.metadataService.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[any]{Data: accounts})
}

// listGroupedCategories godoc
// @Summary List category groups with their categories
// @Tags metadata
// @Produce  json
// @Success 200 {object} dto.DataResponse[[]domain.CategoryGroup]
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /metadata/grouped-categories [get]
func (h *metadataHandler) listGroupedCategories(c *gin.Context) {
	groups, err := h.metadataService.ListGroupedCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[any]{Data: groups})
}
