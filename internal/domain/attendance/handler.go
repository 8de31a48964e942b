package attendance

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/domain/errs"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	phys := api.Group("", auth.RequireRole(auth.RolePhysician))
	phys.GET("/attendance/queue", h.MyQueue)
	phys.POST("/appointments/:id/begin", h.Begin)
	phys.POST("/appointments/:id/finish", h.Finish)

	read := api.Group("", auth.RequireRole(auth.RoleNurse, auth.RoleRegistrar))
	read.GET("/physicians/:id/queue", h.PhysicianQueue)
}

// MyQueue lists the hand-offs waiting for the calling physician.
func (h *Handler) MyQueue(c echo.Context) error {
	physicianID, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller is not a registered clinician")
	}
	return c.JSON(http.StatusOK, h.svc.QueueFor(physicianID))
}

func (h *Handler) PhysicianQueue(c echo.Context) error {
	physicianID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return c.JSON(http.StatusOK, h.svc.QueueFor(physicianID))
}

func (h *Handler) Begin(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.Begin(c.Request().Context(), id)
	if err != nil {
		return mapFlowError(err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) Finish(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Diagnosis *string `json:"diagnosis"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt, err := h.svc.Finish(c.Request().Context(), id, body.Diagnosis, body.Notes)
	if err != nil {
		return mapFlowError(err)
	}
	return c.JSON(http.StatusOK, appt)
}

func mapFlowError(err error) error {
	if errs.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var it *scheduling.InvalidTransitionError
	if errors.As(err, &it) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
