package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"med_adherence_keep/internal/handlers"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupDashboardServer(t *testing.T) (*mocks.MockDashboardService, func(details httpRequestDetails, expectations httpResponseExpectations) (int, []byte)) {
	t.Helper()

	mockSvc := mocks.NewMockDashboardService(t)
	h := handlers.NewDashboardHandler(mockSvc)

	server := newTestServer(t, func(r chi.Router) {
		r.Get("/dashboard/adherence", h.GetAdherence)
		r.Get("/dashboard/calendar", h.GetCalendar)
		r.Post("/reminders", h.PostReminder)
	})

	send := func(details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
		return sendRequest(t, server, details, expectations)
	}
	return mockSvc, send
}

func TestDashboardHandler_GetAdherence(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系: サマリを取得できる", func(t *testing.T) {
		mockSvc, send := setupDashboardServer(t)
		mockSvc.On("GetAdherenceSnapshot", mock.Anything, tenantID).
			Return(&model.AdherenceSnapshotResponse{
				AdherenceRate: 80,
				CurrentStreak: 5,
				MissedCount:   2,
				HasTakenToday: true,
				TakenDates:    []string{"2025-06-29", "2025-06-30"},
				Medications: []model.MedicationTodayResponse{
					{MedicationID: uuid.New(), Name: "アスピリン", StatusForToday: model.LogStatusTaken},
				},
			}, nil).Once()

		_, body := send(httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/dashboard/adherence",
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})

		var snapshot model.AdherenceSnapshotResponse
		require.NoError(t, json.Unmarshal(body, &snapshot))
		assert.Equal(t, 80, snapshot.AdherenceRate)
		assert.Equal(t, 5, snapshot.CurrentStreak)
		assert.True(t, snapshot.HasTakenToday)
		assert.Len(t, snapshot.TakenDates, 2)
	})

	t.Run("異常系: 認証ヘッダーなしは401", func(t *testing.T) {
		_, send := setupDashboardServer(t)

		send(httpRequestDetails{
			Method: http.MethodGet,
			Path:   "/dashboard/adherence",
		}, httpResponseExpectations{ExpectedCode: http.StatusUnauthorized})
	})
}

func TestDashboardHandler_GetCalendar(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系: 月を指定して取得できる", func(t *testing.T) {
		mockSvc, send := setupDashboardServer(t)
		mockSvc.On("GetCalendar", mock.Anything, tenantID, "2025-06").
			Return(&model.CalendarResponse{
				Month: "2025-06",
				Days: map[string]model.LogStatus{
					"2025-06-01": model.LogStatusTaken,
					"2025-06-02": model.LogStatusMissed,
				},
			}, nil).Once()

		_, body := send(httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/dashboard/calendar?month=2025-06",
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})

		var calendar model.CalendarResponse
		require.NoError(t, json.Unmarshal(body, &calendar))
		assert.Equal(t, "2025-06", calendar.Month)
		assert.Equal(t, model.LogStatusTaken, calendar.Days["2025-06-01"])
	})

	t.Run("正常系: 月を省略すると当月が使われる", func(t *testing.T) {
		mockSvc, send := setupDashboardServer(t)
		mockSvc.On("GetCalendar", mock.Anything, tenantID, mock.AnythingOfType("string")).
			Return(&model.CalendarResponse{Days: map[string]model.LogStatus{}}, nil).Once()

		send(httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/dashboard/calendar",
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	})

	t.Run("異常系: 不正な月指定は400", func(t *testing.T) {
		mockSvc, send := setupDashboardServer(t)
		mockSvc.On("GetCalendar", mock.Anything, tenantID, "bad-month").
			Return(nil, model.NewAppError("INVALID_MONTH", "月は YYYY-MM 形式で指定してください。", "month", model.ErrInvalidInput)).Once()

		send(httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/dashboard/calendar?month=bad-month",
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{
			ExpectedCode:     http.StatusBadRequest,
			ExpectedErrorMsg: "YYYY-MM",
		})
	})
}

func TestDashboardHandler_PostReminder(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系: リマインダーを送信できる", func(t *testing.T) {
		mockSvc, send := setupDashboardServer(t)
		mockSvc.On("SendReminder", mock.Anything, tenantID,
			mock.MatchedBy(func(req *model.ReminderRequest) bool {
				return req.Email == "caretaker@example.com"
			})).Return(nil).Once()

		send(httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/reminders",
			Body:    model.ReminderRequest{Email: "caretaker@example.com"},
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	})

	t.Run("異常系: メールアドレス形式不正は400", func(t *testing.T) {
		_, send := setupDashboardServer(t)

		send(httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/reminders",
			Body:    model.ReminderRequest{Email: "not-an-email"},
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest})
	})

	t.Run("異常系: 薬が未登録なら400", func(t *testing.T) {
		mockSvc, send := setupDashboardServer(t)
		mockSvc.On("SendReminder", mock.Anything, tenantID, mock.AnythingOfType("*model.ReminderRequest")).
			Return(model.NewAppError("NO_MEDICATIONS", "服用中の薬が登録されていません。", "", model.ErrInvalidInput)).Once()

		send(httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/reminders",
			Body:    model.ReminderRequest{Email: "caretaker@example.com"},
			Headers: map[string]string{"X-Tenant-ID": tenantID.String()},
		}, httpResponseExpectations{
			ExpectedCode:     http.StatusBadRequest,
			ExpectedErrorMsg: "登録されていません",
		})
	})
}
