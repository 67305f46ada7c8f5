package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Generate godoc
// @Summary     Generate a travel plan
// @Description Generates a multi-day itinerary for a destination and stores it.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Trip parameters"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GeneratePlan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GeneratePlan: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Detail godoc
// @Summary     Get a travel plan
// @Description Returns a stored plan by its ID.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processPlanID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	plan, err := h.uc.GetPlan(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPlan: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(plan))
}

// ExportCalendar godoc
// @Summary     Download the plan as an ICS calendar
// @Description Derives all-day events from the itinerary and returns an ICS file.
// @Tags        Plans
// @Produce     text/calendar
// @Param       id path string true "Plan ID"
// @Success     200 {string} string "ICS file"
// @Failure     400 {object} response.Resp "No calendar data in the itinerary"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plans/{id}/calendar [GET]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processPlanID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportCalendar(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}

// SyncCalendar godoc
// @Summary     Sync the plan to Google Calendar
// @Description Inserts one all-day event per itinerary day into the configured calendar.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Calendar not configured or no calendar data"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/plans/{id}/calendar/sync [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processPlanID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncCalendar(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSyncResp(output))
}
