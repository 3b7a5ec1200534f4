package handlers

import (
	"errors"
	"net/http"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/dto"
	apierrors "github.com/Rosario-Gerratana/FollowTheFood1/internal/errors"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves firm pages, product pages and the directory search.
type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// FirmPage renders a firm and its products.
func (h *DirectoryHandler) FirmPage(c *gin.Context) {
	firm, products, err := h.directoryService.GetFirmPage(c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrFirmNotFound) {
			apierrors.NotFound(c, "Firm not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"firm":     dto.ToFirmDTO(*firm),
		"products": dto.ToProductDTOs(products),
	})
}

// ProductPage renders a single product.
func (h *DirectoryHandler) ProductPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, "Product not found")
		return
	}

	product, err := h.directoryService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			apierrors.NotFound(c, "Product not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"title":   product.Type,
		"product": dto.ToProductDTO(*product),
	})
}

// Search redirects an exact firm-name match to the firm page, then an exact
// product-type match to the product page. Anything else is a 404.
func (h *DirectoryHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		apierrors.NotFound(c, "No firm or product matches that search")
		return
	}

	path, err := h.directoryService.Search(query)
	if err != nil {
		if errors.Is(err, services.ErrNoSearchMatch) {
			apierrors.NotFound(c, "No firm or product matches that search")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusFound, path)
}
