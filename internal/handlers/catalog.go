package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/thumbnail"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetStyles godoc
// @Summary     List styles and color schemes
// @Description Returns every accepted style and color scheme with the descriptor used in the prompt
// @Tags        catalog
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.CatalogResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /styles [get]
func (h *CatalogHandler) GetStyles(c *gin.Context) {
	styles := thumbnail.Styles()
	schemes := thumbnail.ColorSchemes()

	resp := models.CatalogResponse{
		Styles:       make([]models.CatalogEntry, len(styles)),
		ColorSchemes: make([]models.CatalogEntry, len(schemes)),
	}
	for i, s := range styles {
		resp.Styles[i] = models.CatalogEntry{Name: string(s), Description: s.Description()}
	}
	for i, cs := range schemes {
		resp.ColorSchemes[i] = models.CatalogEntry{Name: string(cs), Description: cs.Description()}
	}

	c.JSON(http.StatusOK, resp)
}
