package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/planner"
	"travel-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Detail(c *gin.Context)
	ExportCalendar(c *gin.Context)
	SyncCalendar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
