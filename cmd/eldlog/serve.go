package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"eld_logbook/internal/config"
	"eld_logbook/internal/logger"
	"eld_logbook/internal/middleware"
	"eld_logbook/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the daily-log HTTP service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Init()

	// Structured logging to a rotating file
	logger.Setup(cfg.LogFile)

	gin.SetMode(cfg.GinMode)

	r := routes.SetupRouter()

	// Wrap with CORS for the browser frontend
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, handler)
}
