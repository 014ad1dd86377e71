package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
	"github.com/SscSPs/car_rental_backend/internal/core/reconciliation"
	"github.com/SscSPs/car_rental_backend/internal/dto"
	"github.com/SscSPs/car_rental_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rentalHandler handles HTTP requests related to rentals.
type rentalHandler struct {
	rentalService portssvc.RentalSvcFacade
}

// newRentalHandler creates a new rentalHandler.
func newRentalHandler(rs portssvc.RentalSvcFacade) *rentalHandler {
	return &rentalHandler{
		rentalService: rs,
	}
}

// RegisterRentalRoutes registers routes related to rentals.
func RegisterRentalRoutes(rg *gin.RouterGroup, rentalService portssvc.RentalSvcFacade) {
	registerCustomValidation()
	h := newRentalHandler(rentalService)

	rentals := rg.Group("/rentals")
	{
		rentals.POST("", h.createRental)
		rentals.GET("/:rental_id", h.getRental)
		rentals.POST("/:rental_id/complete", h.completeRental)
		rentals.POST("/:rental_id/cancel", h.cancelRental)
		rentals.POST("/:rental_id/penalties", h.addPenalty)
		rentals.GET("/:rental_id/penalties", h.listPenalties)
	}
}

// requireUserID reads the authenticated user id, answering 401 when absent.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}

// createRental godoc
// @Summary Open a rental
// @Description Prices and opens a rental for a client and an available car, then marks the car rented
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rental body dto.CreateRentalRequest true "Rental details"
// @Success 201 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input or date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Car or client not found"
// @Failure 409 {object} map[string]string "Car unavailable or booking overlaps"
// @Failure 500 {object} map[string]string "Failed to create rental"
// @Security BearerAuth
// @Router /rentals [post]
func (h *rentalHandler) createRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRental", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("car_id", req.CarID), slog.String("client_id", req.ClientID))
	logger.Info("Received request to create rental")

	event, err := h.rentalService.CreateRental(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create rental")
		return
	}

	logger.Info("Rental created successfully", slog.String("rental_id", event.Rental.RentalID))
	c.JSON(http.StatusCreated, dto.ToRentalResponse(event.Rental, reconciliation.ForRental(event.Rental)))
}

// getRental godoc
// @Summary Get a rental by ID
// @Description Retrieves a rental with its car, client and reconciled figures
// @Tags rentals
// @Produce  json
// @Param   rental_id path string true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rental"
// @Security BearerAuth
// @Router /rentals/{rental_id} [get]
func (h *rentalHandler) getRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rental_id")
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID))
	rental, err := h.rentalService.GetRentalByID(c.Request.Context(), rentalID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve rental")
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(*rental, reconciliation.ForRental(*rental)))
}

// completeRental godoc
// @Summary Complete a rental
// @Description Records the return of the car, recomputes cost and deposit and charges any late fee
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rental_id path string true "Rental ID"
// @Param   completion body dto.CompleteRentalRequest false "Return details"
// @Success 200 {object} dto.CompleteRentalResponse
// @Failure 400 {object} map[string]string "Invalid input or rental not active"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to complete rental"
// @Security BearerAuth
// @Router /rentals/{rental_id}/complete [post]
func (h *rentalHandler) completeRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rental_id")
	var req dto.CompleteRentalRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for CompleteRental", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID))
	logger.Info("Received request to complete rental")

	event, err := h.rentalService.CompleteRental(c.Request.Context(), rentalID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to complete rental")
		return
	}

	logger.Info("Rental completed successfully",
		slog.String("late_fee", event.LateFee.String()),
		slog.Bool("car_now_free", event.CarNowFree))
	c.JSON(http.StatusOK, dto.CompleteRentalResponse{
		Rental:     dto.ToRentalResponse(event.Rental, reconciliation.ForRental(event.Rental)),
		LateFee:    event.LateFee,
		DaysLate:   event.DaysLate,
		CarNowFree: event.CarNowFree,
	})
}

// cancelRental godoc
// @Summary Cancel a rental
// @Description Cancels an active rental, recomputing cost for the days used when it had started
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rental_id path string true "Rental ID"
// @Param   cancellation body dto.CancelRentalRequest false "Cancellation details"
// @Success 200 {object} dto.CancelRentalResponse
// @Failure 400 {object} map[string]string "Invalid input or rental not active"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to cancel rental"
// @Security BearerAuth
// @Router /rentals/{rental_id}/cancel [post]
func (h *rentalHandler) cancelRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rental_id")
	var req dto.CancelRentalRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for CancelRental", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID))
	logger.Info("Received request to cancel rental")

	event, err := h.rentalService.CancelRental(c.Request.Context(), rentalID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to cancel rental")
		return
	}

	logger.Info("Rental cancelled successfully", slog.Bool("car_now_free", event.CarNowFree))
	c.JSON(http.StatusOK, dto.CancelRentalResponse{
		Rental:      dto.ToRentalResponse(event.Rental, reconciliation.ForRental(event.Rental)),
		BeforeStart: event.BeforeStart,
		CarNowFree:  event.CarNowFree,
	})
}

// addPenalty godoc
// @Summary Attach a penalty to a rental
// @Description Stores a manual penalty record and updates the rental's penalty total
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rental_id path string true "Rental ID"
// @Param   penalty body dto.AddPenaltyRequest true "Penalty details"
// @Success 201 {object} dto.PenaltyResponse
// @Failure 400 {object} map[string]string "Invalid amount or rental cancelled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to add penalty"
// @Security BearerAuth
// @Router /rentals/{rental_id}/penalties [post]
func (h *rentalHandler) addPenalty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rental_id")
	var req dto.AddPenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPenalty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID))
	logger.Info("Received request to add penalty", slog.String("amount", req.Amount.String()))

	event, err := h.rentalService.AddPenalty(c.Request.Context(), rentalID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add penalty")
		return
	}

	logger.Info("Penalty added successfully", slog.String("penalty_id", event.Penalty.PenaltyID))
	c.JSON(http.StatusCreated, dto.ToPenaltyResponse(event.Penalty))
}

// listPenalties godoc
// @Summary List the penalties of a rental
// @Tags rentals
// @Produce  json
// @Param   rental_id path string true "Rental ID"
// @Success 200 {array} dto.PenaltyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to list penalties"
// @Security BearerAuth
// @Router /rentals/{rental_id}/penalties [get]
func (h *rentalHandler) listPenalties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("rental_id")
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	penalties, err := h.rentalService.ListPenalties(c.Request.Context(), rentalID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("rental_id", rentalID)), err, "Failed to list penalties")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPenaltyResponse(penalties))
}
