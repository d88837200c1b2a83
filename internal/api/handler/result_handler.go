package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

// ResultDispatcher is the interface the handler uses to enqueue uploads.
type ResultDispatcher interface {
	Enqueue(batch ports.ResultBatchInput)
}

// ResultHandler handles result sheet uploads and lookups.
type ResultHandler struct {
	dispatcher ResultDispatcher
	service    ports.ResultService
}

func NewResultHandler(dispatcher ResultDispatcher, service ports.ResultService) *ResultHandler {
	return &ResultHandler{dispatcher: dispatcher, service: service}
}

// Upload handles POST /results/:class — enqueues a result sheet, returns 202.
//
// @Summary      Upload a result sheet for a class
// @Tags         results
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        class  path      string              true  "Class key, e.g. FE_CS_I"
// @Param        body   body      []resultRowRequest  true  "Result rows"
// @Success      202    {object}  acceptedResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /results/{class} [post]
func (h *ResultHandler) Upload(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	classKey := c.Param("class")
	if classKey == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "class key is required")
	}

	var rows []resultRowRequest
	if err := c.Bind(&rows); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(rows) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "result sheet cannot be empty")
	}

	batch := ports.ResultBatchInput{
		ClassKey:   classKey,
		UploadedBy: accountID,
		Rows:       make([]ports.ResultRow, 0, len(rows)),
	}
	for i, row := range rows {
		if err := c.Validate(&row); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("row[%d]: %s", i, err.Error()))
		}
		batch.Rows = append(batch.Rows, ports.ResultRow{
			StudentName: row.StudentName,
			Grade:       row.Grade,
			Outcome:     row.Outcome,
		})
	}

	h.dispatcher.Enqueue(batch)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "result sheet accepted",
		Count:   len(batch.Rows),
	})
}

// Summary handles GET /results/:class/summary.
//
// @Summary      Class result summary
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        class  path      string  true  "Class key"
// @Success      200    {object}  domain.ResultSummary
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /results/{class}/summary [get]
func (h *ResultHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context(), c.Param("class"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Top handles GET /results/:class/top?n=5.
//
// @Summary      Top students of a class by grade
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        class  path      string  true   "Class key"
// @Param        n      query     int     false  "Number of students (default 5)"
// @Success      200    {array}   domain.ResultEntry
// @Failure      401    {object}  errorResponse
// @Router       /results/{class}/top [get]
func (h *ResultHandler) Top(c echo.Context) error {
	n, _ := strconv.Atoi(c.QueryParam("n"))
	entries, err := h.service.TopStudents(c.Request().Context(), c.Param("class"), n)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// StudentResults handles GET /results/:class/student/:name — a student looks
// up their rows by name, matched case-insensitively as the original portal
// did.
//
// @Summary      Result rows for one student
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        class  path      string  true  "Class key"
// @Param        name   path      string  true  "Student name"
// @Success      200    {array}   domain.ResultEntry
// @Failure      401    {object}  errorResponse
// @Router       /results/{class}/student/{name} [get]
func (h *ResultHandler) StudentResults(c echo.Context) error {
	entries, err := h.service.StudentResults(c.Request().Context(), c.Param("class"), c.Param("name"))
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.ResultEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
