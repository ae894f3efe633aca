package handlers

import (
	"errors"
	"net/http"
	"time"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/service"
	"med_adherence_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetAdherence は服薬状況のサマリを返します
func (h *DashboardHandler) GetAdherence(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	snapshot, err := h.service.GetAdherenceSnapshot(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, snapshot, logger)
}

// GetCalendar は月間カレンダー用の日別ステータスを返します。
// month (YYYY-MM) を省略した場合は当月になります。
func (h *DashboardHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	calendar, err := h.service.GetCalendar(r.Context(), tenantID, month)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, calendar, logger)
}

// PostReminder は当日未服用の薬を知らせるリマインダーメールを送信します
func (h *DashboardHandler) PostReminder(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ReminderRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	if err := h.service.SendReminder(r.Context(), tenantID, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "リマインダーメールを送信しました。",
	}, logger)
}
