package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/registry"
	"github.com/okaya/airticket/internal/service/booking"
)

// BookingHandler exposes the hold / purchase operations. There is no
// session layer: every request authenticates with username + password.
type BookingHandler struct {
	registry *registry.Registry
	service  booking.BookingUseCase
}

type bookingResponse struct {
	Message string `json:"message"`
}

func NewBookingHandler(reg *registry.Registry, service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{registry: reg, service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/:id/holds", h.hold)
	router.DELETE("/:id/holds", h.cancelHold)
	router.POST("/:id/holds/purchase", h.convert)
	router.POST("/:id/tickets", h.directPurchase)
}

func (h *BookingHandler) hold(c *gin.Context) {
	user, flight, ok := h.resolve(c)
	if !ok {
		return
	}
	msg, err := h.service.Hold(c.Request.Context(), user, flight, time.Now())
	h.respond(c, msg, err)
}

func (h *BookingHandler) cancelHold(c *gin.Context) {
	user, flight, ok := h.resolve(c)
	if !ok {
		return
	}
	msg, err := h.service.CancelHold(c.Request.Context(), user, flight)
	h.respond(c, msg, err)
}

func (h *BookingHandler) convert(c *gin.Context) {
	user, flight, ok := h.resolve(c)
	if !ok {
		return
	}
	msg, err := h.service.ConvertToPurchase(c.Request.Context(), user, flight)
	h.respond(c, msg, err)
}

func (h *BookingHandler) directPurchase(c *gin.Context) {
	user, flight, ok := h.resolve(c)
	if !ok {
		return
	}
	msg, err := h.service.DirectPurchase(c.Request.Context(), user, flight, time.Now())
	h.respond(c, msg, err)
}

// resolve authenticates the caller and loads the target flight, writing
// the error response itself when either step fails.
func (h *BookingHandler) resolve(c *gin.Context) (*domain.User, *domain.Flight, bool) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	user, err := h.registry.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, nil, false
	}
	flight, err := h.registry.FlightByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return user, flight, true
}

func (h *BookingHandler) respond(c *gin.Context, msg string, err error) {
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, domain.ErrPastDeparture) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, bookingResponse{Message: msg})
}
