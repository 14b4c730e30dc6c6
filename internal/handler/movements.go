package handler

import (
	"net/http"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/middleware"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MovementsHandler struct{ svc service.MovementService }

func NewMovementsHandler(svc service.MovementService) *MovementsHandler {
	return &MovementsHandler{svc: svc}
}

// Record godoc
// @Summary Record a stock movement
// @Tags movements
// @Accept json
// @Produce json
// @Param body body dto.RecordMovementRequest true "Movement"
// @Success 201 {object} dto.MovementResult
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/movements [post]
func (h *MovementsHandler) Record(c *gin.Context) {
	var req dto.RecordMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	actorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid token"))
		return
	}

	resp, err := h.svc.Record(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MovementsHandler) List(c *gin.Context) {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid product_id"))
			return
		}
		productID = &id
	}

	resp, err := h.svc.List(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
