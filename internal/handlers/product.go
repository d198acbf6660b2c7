package handlers

import (
	"net/http"

	"github.com/RCnetmiles/Lab-Label/internal/models"
	"github.com/RCnetmiles/Lab-Label/internal/services"

	"github.com/gin-gonic/gin"
)

// Product alias so swag can resolve the model in annotations.
type Product = models.Product

type ProductHandler struct {
	store services.ProductStore
	batch int
}

func NewProductHandler(store services.ProductStore, batch int) *ProductHandler {
	return &ProductHandler{store: store, batch: batch}
}

// ListProducts godoc
// @Summary      Fetch a random product batch
// @Description  Returns enough distinct products for one play-through, in random order
// @Tags         products
// @Produce      json
// @Success      200 {array} Product
// @Failure      500 {object} ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.store.ListRandom(h.batch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}
