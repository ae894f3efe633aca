// internal/service/dashboard_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"med_adherence_keep/internal/config"
	"med_adherence_keep/internal/dateutil"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingMailer はテスト用に送信内容を覚えておくMailer実装です
type recordingMailer struct {
	to      string
	subject string
	body    string
	sent    int
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	m.to = to
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}

func newTestDashboardService(db *gorm.DB, mailer Mailer) DashboardService {
	cfg := &config.Config{}
	cfg.App.AdherenceWindowDays = 30
	return NewDashboardService(db, repository.NewGormMedicationRepository(), repository.NewGormLogRepository(), mailer, cfg)
}

func seedLog(t *testing.T, db *gorm.DB, tenantID, medicationID uuid.UUID, date string, status model.LogStatus) {
	t.Helper()
	require.NoError(t, db.Create(&model.MedicationLog{
		LogID:        uuid.New(),
		TenantID:     tenantID,
		MedicationID: medicationID,
		Date:         date,
		Status:       status,
	}).Error)
}

func Test_dashboardService_GetAdherenceSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 複数の薬を日単位に畳み込んで集計する", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})
		tenantID := uuid.New()
		med1 := createTestMedication(t, db, tenantID, "アスピリン")
		med2 := createTestMedication(t, db, tenantID, "ビタミンD")

		today := dateutil.DateKey(time.Now())
		yesterday := dateutil.DateKey(time.Now().AddDate(0, 0, -1))

		// 今日: 両方服用 → taken の日
		seedLog(t, db, tenantID, med1.MedicationID, today, model.LogStatusTaken)
		seedLog(t, db, tenantID, med2.MedicationID, today, model.LogStatusTaken)
		// 昨日: 片方のみ服用 → 過去日なので missed の日
		seedLog(t, db, tenantID, med1.MedicationID, yesterday, model.LogStatusTaken)

		snapshot, err := svc.GetAdherenceSnapshot(ctx, tenantID)
		require.NoError(t, err)

		assert.True(t, snapshot.HasTakenToday)
		assert.Equal(t, 1, snapshot.CurrentStreak, "昨日は全薬服用ではないので連続は今日のみ")
		assert.Equal(t, 1, snapshot.MissedCount)
		// ウィンドウ30日中、全薬服用は今日の1日だけ → round(1/30*100) = 3
		assert.Equal(t, 3, snapshot.AdherenceRate)
		assert.Equal(t, []string{today}, snapshot.TakenDates)

		require.Len(t, snapshot.Medications, 2)
		for _, m := range snapshot.Medications {
			assert.Equal(t, model.LogStatusTaken, m.StatusForToday)
		}
	})

	t.Run("正常系: 記録がなければゼロ値のサマリ", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})
		tenantID := uuid.New()
		createTestMedication(t, db, tenantID, "アスピリン")

		snapshot, err := svc.GetAdherenceSnapshot(ctx, tenantID)
		require.NoError(t, err)

		assert.False(t, snapshot.HasTakenToday)
		assert.Zero(t, snapshot.AdherenceRate)
		assert.Zero(t, snapshot.CurrentStreak)
		assert.Zero(t, snapshot.MissedCount)
		assert.Empty(t, snapshot.TakenDates)
		require.Len(t, snapshot.Medications, 1)
		assert.Equal(t, model.LogStatusPending, snapshot.Medications[0].StatusForToday)
	})

	t.Run("境界系: 薬が0件でもエラーにならない", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})

		snapshot, err := svc.GetAdherenceSnapshot(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, snapshot.Medications)
		assert.Zero(t, snapshot.AdherenceRate)
	})
}

func Test_dashboardService_GetCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 過去月の日別ステータスを返す", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		seedLog(t, db, tenantID, medication.MedicationID, "2025-05-10", model.LogStatusTaken)
		seedLog(t, db, tenantID, medication.MedicationID, "2025-05-11", model.LogStatusMissed)

		calendar, err := svc.GetCalendar(ctx, tenantID, "2025-05")
		require.NoError(t, err)

		assert.Equal(t, "2025-05", calendar.Month)
		assert.Len(t, calendar.Days, 31)
		assert.Equal(t, model.LogStatusTaken, calendar.Days["2025-05-10"])
		assert.Equal(t, model.LogStatusMissed, calendar.Days["2025-05-11"])
		// 記録なしの過去日も missed
		assert.Equal(t, model.LogStatusMissed, calendar.Days["2025-05-12"])
	})

	t.Run("正常系: 薬が0件の月は全日pending", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})

		calendar, err := svc.GetCalendar(ctx, uuid.New(), "2025-05")
		require.NoError(t, err)
		for _, status := range calendar.Days {
			assert.Equal(t, model.LogStatusPending, status)
		}
	})

	t.Run("異常系: 不正な月指定はErrInvalidInput", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})

		_, err := svc.GetCalendar(ctx, uuid.New(), "2025/05")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("境界系: ゼロ埋めなしの月指定もErrInvalidInput", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestDashboardService(db, &recordingMailer{})

		_, err := svc.GetCalendar(ctx, uuid.New(), "2025-6")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_dashboardService_SendReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 未服用の薬がメール本文に載る", func(t *testing.T) {
		db := setupTestDBLog(t)
		mailer := &recordingMailer{}
		svc := newTestDashboardService(db, mailer)
		tenantID := uuid.New()
		med1 := createTestMedication(t, db, tenantID, "アスピリン")
		createTestMedication(t, db, tenantID, "ビタミンD")

		// アスピリンだけ服用済み
		seedLog(t, db, tenantID, med1.MedicationID, dateutil.DateKey(time.Now()), model.LogStatusTaken)

		err := svc.SendReminder(ctx, tenantID, &model.ReminderRequest{Email: "caretaker@example.com"})
		require.NoError(t, err)

		assert.Equal(t, 1, mailer.sent)
		assert.Equal(t, "caretaker@example.com", mailer.to)
		assert.Contains(t, mailer.body, "ビタミンD")
		assert.NotContains(t, mailer.body, "アスピリン")
	})

	t.Run("正常系: 全薬服用済みなら記録済みの旨を送る", func(t *testing.T) {
		db := setupTestDBLog(t)
		mailer := &recordingMailer{}
		svc := newTestDashboardService(db, mailer)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")
		seedLog(t, db, tenantID, medication.MedicationID, dateutil.DateKey(time.Now()), model.LogStatusTaken)

		err := svc.SendReminder(ctx, tenantID, &model.ReminderRequest{Email: "caretaker@example.com"})
		require.NoError(t, err)
		assert.Contains(t, mailer.body, "記録済み")
	})

	t.Run("異常系: 薬が未登録ならErrInvalidInput", func(t *testing.T) {
		db := setupTestDBLog(t)
		mailer := &recordingMailer{}
		svc := newTestDashboardService(db, mailer)

		err := svc.SendReminder(ctx, uuid.New(), &model.ReminderRequest{Email: "caretaker@example.com"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Zero(t, mailer.sent)
	})
}
