package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingPlanID = errors.New("plan id is required")

// processGenerateReq binds and validates the plan generation request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPlanID extracts the plan ID URI param.
func (h *handler) processPlanID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingPlanID
	}
	return id, nil
}
