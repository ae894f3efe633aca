package handlers

import (
	"errors"
	"net/http"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/service"
	"med_adherence_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type LogHandler struct {
	service service.LogService
}

func NewLogHandler(s service.LogService) *LogHandler {
	return &LogHandler{service: s}
}

// MarkTaken は指定した薬を服用済みとして記録します。
// ボディは省略可能で、省略時は当日の記録になります。
func (h *LogHandler) MarkTaken(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	medicationID, err := parseMedicationID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// ボディなしのリクエストは「今日服用した」として扱う
	var req model.MarkTakenRequest
	if r.ContentLength != 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", "error", err)
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
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

	entry, err := h.service.MarkTaken(r.Context(), tenantID, medicationID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// GetLogs は服薬ログの一覧を返します。start/end (YYYY-MM-DD) で期間を絞れます
func (h *LogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	logs, err := h.service.ListLogs(r.Context(), tenantID, start, end)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if logs == nil {
		logs = []*model.MedicationLog{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, logs, logger)
}
