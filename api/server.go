package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

// Serve runs the HTTP server until ctx is cancelled, then drains open
// requests for up to five seconds.
func (app *Application) Serve(ctx context.Context, mux *http.ServeMux) error {
	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	shutdownErr := make(chan error, 1)

	go func() {
		<-ctx.Done()
		log.Printf("shutting down server: %v", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	log.Printf("starting server on port %v", app.Config.HTTPPort)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	log.Printf("stopped server %v", app.Config.HTTPPort)
	return nil
}
