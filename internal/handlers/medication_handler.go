package handlers

import (
	"errors"
	"net/http"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/service"
	"med_adherence_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MedicationHandler struct {
	service service.MedicationService
}

func NewMedicationHandler(s service.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: s}
}

// PostMedication は新しい薬を登録します
func (h *MedicationHandler) PostMedication(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostMedicationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for medication creation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	medication, err := h.service.CreateMedication(r.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			appErr := model.NewAppError("DUPLICATE_NAME", "同じ名前の薬が既に登録されています。", "name", model.ErrConflict)
			webutil.HandleError(w, logger, appErr)
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Medication created", "medication_id", medication.MedicationID)
	webutil.RespondWithJSON(w, http.StatusCreated, medication, logger)
}

// GetMedications は登録中の薬の一覧を返します
func (h *MedicationHandler) GetMedications(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	medications, err := h.service.ListMedications(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if medications == nil {
		medications = []*model.Medication{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, medications, logger)
}

// GetMedication は指定IDの薬を返します
func (h *MedicationHandler) GetMedication(w http.ResponseWriter, r *http.Request) {
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

	medication, err := h.service.GetMedication(r.Context(), tenantID, medicationID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, medication, logger)
}

// PutMedication は薬の情報を全体更新します
func (h *MedicationHandler) PutMedication(w http.ResponseWriter, r *http.Request) {
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

	var req model.PutMedicationRequest
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

	medication, err := h.service.UpdateMedication(r.Context(), tenantID, medicationID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			appErr := model.NewAppError("DUPLICATE_NAME", "同じ名前の薬が既に登録されています。", "name", model.ErrConflict)
			webutil.HandleError(w, logger, appErr)
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, medication, logger)
}

// PatchMedication は薬の情報を部分更新します
func (h *MedicationHandler) PatchMedication(w http.ResponseWriter, r *http.Request) {
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

	var req model.PatchMedicationRequest
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

	medication, err := h.service.PatchMedication(r.Context(), tenantID, medicationID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			appErr := model.NewAppError("DUPLICATE_NAME", "同じ名前の薬が既に登録されています。", "name", model.ErrConflict)
			webutil.HandleError(w, logger, appErr)
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, medication, logger)
}

// DeleteMedication は薬を論理削除します。過去の服薬ログは残ります
func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteMedication(r.Context(), tenantID, medicationID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Medication deleted", "medication_id", medicationID)
	w.WriteHeader(http.StatusNoContent)
}

// parseMedicationID はURLパスの medication_id を解釈します
func parseMedicationID(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "medication_id")
	medicationID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", "薬のIDの形式が正しくありません。", "medication_id", model.ErrInvalidInput)
	}
	return medicationID, nil
}
