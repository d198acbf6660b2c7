package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Message string `json:"message" example:"product not found"`
	Field   string `json:"field,omitempty" example:"selectedContainer"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// jsonFieldNames maps binding struct fields to their wire names so
// validation errors point at what the client actually sent.
var jsonFieldNames = map[string]string{
	"ProductID":          "productId",
	"SelectedContainer":  "selectedContainer",
	"SelectedPictograms": "selectedPictograms",
}

func bindErrorResponse(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := jsonFieldNames[fe.Field()]
		if field == "" {
			field = fe.Field()
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		return ErrorResponse{Message: msg, Field: field}
	}
	return ErrorResponse{Message: err.Error()}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
