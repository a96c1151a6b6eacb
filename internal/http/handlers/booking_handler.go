// README: Booking handler: binds the request, quotes the itinerary, echoes details.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ridequote/internal/http/middleware"
	"ridequote/internal/modules/quote"
)

type BookingHandler struct {
	quotes *quote.Service
	log    *zap.Logger
}

func NewBookingHandler(quotes *quote.Service, log *zap.Logger) *BookingHandler {
	return &BookingHandler{quotes: quotes, log: log}
}

type bookingDetails struct {
	quote.BookingRequest
	TotalDistanceKm      float64     `json:"total_distance_km"`
	TotalDurationMinutes float64     `json:"total_duration_minutes"`
	EstimatedCostUSD     float64     `json:"estimated_cost_usd"`
	CalculatedLegs       []quote.Leg `json:"calculated_legs"`
}

type bookingResponse struct {
	Message        string         `json:"message"`
	BookingDetails bookingDetails `json:"booking_details"`
}

// BookRide handles POST /book-ride.
func (h *BookingHandler) BookRide(c *gin.Context) {
	var req quote.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// Echo an empty list, not null, when no extra stops were sent.
	if req.AdditionalDestinations == nil {
		req.AdditionalDestinations = []string{}
	}

	q, err := h.quotes.Quote(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("quote failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		)
		writeQuoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		Message: "Ride booking request received and processed!",
		BookingDetails: bookingDetails{
			BookingRequest:       req,
			TotalDistanceKm:      q.TotalDistanceKm,
			TotalDurationMinutes: q.TotalDurationMinutes,
			EstimatedCostUSD:     q.EstimatedCost,
			CalculatedLegs:       q.Legs,
		},
	})
}
