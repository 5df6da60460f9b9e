package handlers

import (
	"net/http"

	"github.com/SscSPs/news_aggregator_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// HealthReporter exposes the last known database connectivity.
type HealthReporter interface {
	Status() database.Status
}

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "News Aggregator API"})
}

// getHealth godoc
// @Summary Database health
// @Description 200 when the last database check succeeded, 503 otherwise.
// @Tags root
// @Produce json
// @Success 200 {object} database.Status
// @Failure 503 {object} database.Status
// @Router /health [get]
func getHealth(health HealthReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health == nil {
			c.JSON(http.StatusServiceUnavailable, database.Status{LastError: "health tracking disabled"})
			return
		}
		status := health.Status()
		if !status.Connected {
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}
