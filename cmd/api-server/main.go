package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"doghub/internal/breeds"
	"doghub/internal/digest"
	"doghub/internal/facts"
	"doghub/internal/fetch"
	"doghub/internal/notifyhub"
	"doghub/pkg/utils"
)

func main() {
	fetchCfg := utils.LoadFetchConfig()
	srvCfg := utils.LoadServerConfig()

	client := fetch.NewClient(fetchCfg.Timeout, fetchCfg.UserAgent)
	agg := digest.NewAggregator(
		breeds.NewSource(fetchCfg.BreedsBaseURL, client),
		facts.NewSource(fetchCfg.FactsBaseURL, fetchCfg.FactBatch, client),
	)

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := notifyhub.NewHub()
	router.GET("/ws", notifyhub.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"ws_clients": hub.Stats().Clients,
		})
	})

	digestHandler := digest.NewHandler(agg, hub)
	digestHandler.RegisterRoutes(router.Group("/digest"))

	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", srvCfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
