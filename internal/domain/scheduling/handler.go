package scheduling

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/domain/errs"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole(auth.RolePhysician, auth.RoleNurse, auth.RoleRegistrar))
	read.GET("/appointments/today", h.TodaysAppointments)
	read.GET("/appointments/:id", h.GetAppointment)
	read.GET("/patients/:id/appointments", h.PatientHistory)
	read.GET("/patients/:id/appointments/latest", h.LatestScheduled)
	read.GET("/physicians/:id/agenda", h.PhysicianAgenda)

	desk := api.Group("", auth.RequireRole(auth.RoleRegistrar))
	desk.POST("/appointments", h.Schedule)
	desk.POST("/appointments/:id/forward-triage", h.ForwardToTriage)
	desk.POST("/appointments/:id/cancel", h.Cancel)
	desk.POST("/appointments/:id/no-show", h.MarkNoShow)
}

func (h *Handler) Schedule(c echo.Context) error {
	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt, err := h.svc.Schedule(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "could not schedule appointment")
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) ForwardToTriage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !h.svc.ForwardToTriage(c.Request().Context(), id) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "could not forward to triage")
	}
	return c.JSON(http.StatusOK, map[string]bool{"forwarded": true})
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errs.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) Cancel(c echo.Context) error {
	return h.applyTransition(c, h.svc.Cancel)
}

func (h *Handler) MarkNoShow(c echo.Context) error {
	return h.applyTransition(c, h.svc.MarkNoShow)
}

func (h *Handler) applyTransition(c echo.Context, op func(ctx context.Context, id uuid.UUID) (*Appointment, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := op(c.Request().Context(), id)
	if err != nil {
		if errs.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		var it *InvalidTransitionError
		if errors.As(err, &it) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) TodaysAppointments(c echo.Context) error {
	appts, err := h.svc.TodaysAppointments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appts)
}

func (h *Handler) PatientHistory(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	pg := pagination.FromContext(c)
	appts, total, err := h.svc.PatientHistory(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(appts, total, pg.Limit, pg.Offset))
}

func (h *Handler) LatestScheduled(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.LatestScheduled(c.Request().Context(), patientID)
	if err != nil {
		if errs.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "no scheduled appointment for patient")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) PhysicianAgenda(c echo.Context) error {
	physicianID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	date := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
	} else {
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	appts, err := h.svc.PhysicianAgenda(c.Request().Context(), physicianID, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appts)
}
