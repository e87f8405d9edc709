package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/registry"
	"github.com/okaya/airticket/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID             int64  `json:"id"`
	Airline        string `json:"airline"`
	Manufacturer   string `json:"manufacturer"`
	Model          string `json:"model"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departure_time"`
	Capacity       int    `json:"capacity"`
	AvailableSeats int    `json:"available_seats"`
	HeldSeats      int    `json:"held_seats"`
	SellableSeats  int    `json:"sellable_seats"`
	PriceCents     int64  `json:"price_cents"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]flightResponse, 0, len(all))
	for _, f := range all {
		out = append(out, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:             f.ID,
		Airline:        f.Airline,
		Manufacturer:   f.Manufacturer,
		Model:          f.Model,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  f.DepartureTime.Format(time.RFC3339),
		Capacity:       f.Capacity,
		AvailableSeats: f.AvailableSeats(),
		HeldSeats:      f.HoldCount(),
		SellableSeats:  f.SellableSeats(),
		PriceCents:     f.PriceCents,
	}
}
