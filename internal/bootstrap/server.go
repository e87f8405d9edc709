package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okaya/airticket/api"
	"github.com/okaya/airticket/config"
	"github.com/okaya/airticket/internal/registry"
	"github.com/okaya/airticket/internal/service/booking"
	"github.com/okaya/airticket/internal/service/flights"
)

// NewRouter assembles the gin engine for the HTTP surface.
func NewRouter(reg *registry.Registry, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())

	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewAccountHandler(reg).Register(router.Group("/"))
	api.NewBookingHandler(reg, bookingSvc).Register(router.Group("/flights"))

	return router
}

// Run serves the HTTP API and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
