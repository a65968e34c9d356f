package handler

import (
	"net/http"
	"strconv"
	"time"

	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}

// GetChartData serves ?period=daily|weekly|monthly, defaulting to daily.
func (h *DashboardHandler) GetChartData(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "daily"
	}

	chart, err := h.dashboardUsecase.ChartData(r.Context(), period)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPeriod:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get chart data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chart data retrieved successfully", chart)
}

// GetCalendar serves ?month=&year=, defaulting to the current month.
func (h *DashboardHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		year = now.Year()
	}

	calendar, err := h.dashboardUsecase.Calendar(r.Context(), month, year)
	if err != nil {
		response.InternalServerError(w, "Failed to get calendar")
		return
	}

	response.Success(w, http.StatusOK, "Calendar retrieved successfully", calendar)
}
