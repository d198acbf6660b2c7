package handlers

import (
	"errors"
	"net/http"

	"github.com/RCnetmiles/Lab-Label/internal/services"
	"github.com/RCnetmiles/Lab-Label/internal/ws"

	"github.com/gin-gonic/gin"
)

type VerifyHandler struct {
	verifier *services.VerificationService
	hub      *ws.Hub
}

func NewVerifyHandler(verifier *services.VerificationService, hub *ws.Hub) *VerifyHandler {
	return &VerifyHandler{verifier: verifier, hub: hub}
}

type VerifyRequest struct {
	ProductID          uint      `json:"productId" binding:"required" example:"1"`
	SelectedContainer  string    `json:"selectedContainer" binding:"required,oneof=glass plastic" example:"glass"`
	SelectedPictograms *[]string `json:"selectedPictograms" binding:"required"`
}

// VerifyAnswer godoc
// @Summary      Verify a labeling answer
// @Description  Checks the chosen container and pictogram set against stored ground truth and returns the score delta
// @Tags         verify
// @Accept       json
// @Produce      json
// @Param        request body VerifyRequest true "Submitted answer"
// @Success      200 {object} services.VerifyResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/verify [post]
func (h *VerifyHandler) VerifyAnswer(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	result, err := h.verifier.Verify(req.ProductID, req.SelectedContainer, *req.SelectedPictograms)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	h.hub.Broadcast(ws.Event{
		Type: "verification",
		Data: gin.H{
			"productId":  req.ProductID,
			"correct":    result.Correct,
			"scoreDelta": result.ScoreDelta,
			"message":    result.Message,
		},
	})

	c.JSON(http.StatusOK, result)
}
