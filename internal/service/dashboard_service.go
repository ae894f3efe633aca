package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"med_adherence_keep/internal/adherence"
	"med_adherence_keep/internal/config"
	"med_adherence_keep/internal/dateutil"
	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService interface {
	GetAdherenceSnapshot(ctx context.Context, tenantID uuid.UUID) (*model.AdherenceSnapshotResponse, error)
	GetCalendar(ctx context.Context, tenantID uuid.UUID, month string) (*model.CalendarResponse, error)
	SendReminder(ctx context.Context, tenantID uuid.UUID, req *model.ReminderRequest) error
}

type dashboardService struct {
	db      *gorm.DB
	medRepo repository.MedicationRepository
	logRepo repository.LogRepository
	mailer  Mailer
	cfg     *config.Config
}

func NewDashboardService(db *gorm.DB, medRepo repository.MedicationRepository, logRepo repository.LogRepository, mailer Mailer, cfg *config.Config) DashboardService {
	return &dashboardService{
		db:      db,
		medRepo: medRepo,
		logRepo: logRepo,
		mailer:  mailer,
		cfg:     cfg,
	}
}

// GetAdherenceSnapshot は服薬状況のサマリをログから再計算して返します。
// サマリは永続化せず、毎回導出します。
func (s *dashboardService) GetAdherenceSnapshot(ctx context.Context, tenantID uuid.UUID) (*model.AdherenceSnapshotResponse, error) {
	logger := middleware.GetLogger(ctx)

	medications, err := s.medRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error loading medications for snapshot", "error", err)
		return nil, model.ErrInternalServer
	}

	logs, err := s.logRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error loading logs for snapshot", "error", err)
		return nil, model.ErrInternalServer
	}

	now := time.Now()
	records := s.foldDailyRecords(medications, logs, now)
	snap := adherence.Compute(records, s.cfg.App.AdherenceWindowDays, now)

	takenDates := make([]string, 0, len(snap.TakenDates))
	for date := range snap.TakenDates {
		takenDates = append(takenDates, date)
	}
	sort.Strings(takenDates)

	// 各薬の「今日のステータス」。当日は missed にならず taken か pending のどちらか
	todayKey := dateutil.DateKey(now)
	statusToday := make(map[uuid.UUID]model.LogStatus, len(medications))
	for _, l := range logs {
		if l.Date == todayKey {
			statusToday[l.MedicationID] = l.Status
		}
	}
	medsToday := make([]model.MedicationTodayResponse, 0, len(medications))
	for _, m := range medications {
		status := model.LogStatusPending
		if statusToday[m.MedicationID] == model.LogStatusTaken {
			status = model.LogStatusTaken
		}
		medsToday = append(medsToday, model.MedicationTodayResponse{
			MedicationID:   m.MedicationID,
			Name:           m.Name,
			Dosage:         m.Dosage,
			Schedule:       m.Schedule,
			StatusForToday: status,
		})
	}

	return &model.AdherenceSnapshotResponse{
		AdherenceRate: snap.AdherenceRate,
		CurrentStreak: snap.CurrentStreak,
		MissedCount:   snap.MissedCount,
		HasTakenToday: snap.HasTakenToday,
		TakenDates:    takenDates,
		Medications:   medsToday,
	}, nil
}

// GetCalendar は指定月 (YYYY-MM) の日別ステータスを返します
func (s *dashboardService) GetCalendar(ctx context.Context, tenantID uuid.UUID, month string) (*model.CalendarResponse, error) {
	logger := middleware.GetLogger(ctx)

	firstDay, err := time.ParseInLocation("2006-01", month, time.Local)
	// ゼロ埋めなし ("2024-6" 等) は日付キーと同じ方針で弾く
	if err != nil || firstDay.Format("2006-01") != month {
		return nil, model.NewAppError("INVALID_MONTH", "月は YYYY-MM 形式で指定してください。", "month", model.ErrInvalidInput)
	}
	lastDay := firstDay.AddDate(0, 1, -1)

	medications, err := s.medRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error loading medications for calendar", "error", err)
		return nil, model.ErrInternalServer
	}
	activeMedIDs := make([]uuid.UUID, 0, len(medications))
	for _, m := range medications {
		activeMedIDs = append(activeMedIDs, m.MedicationID)
	}

	logs, err := s.logRepo.FindByTenantInRange(ctx, s.db, tenantID, dateutil.DateKey(firstDay), dateutil.DateKey(lastDay))
	if err != nil {
		logger.Error("Error loading logs for calendar", "error", err)
		return nil, model.ErrInternalServer
	}

	// 日付ごとに (薬ID -> ステータス) を引けるようにしておく
	byDate := make(map[string]map[uuid.UUID]model.LogStatus)
	for _, l := range logs {
		if byDate[l.Date] == nil {
			byDate[l.Date] = make(map[uuid.UUID]model.LogStatus)
		}
		byDate[l.Date][l.MedicationID] = l.Status
	}

	now := time.Now()
	days := make(map[string]model.LogStatus)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := dateutil.DateKey(day)
		days[key] = adherence.ClassifyDay(byDate[key], activeMedIDs, day, now)
	}

	return &model.CalendarResponse{Month: month, Days: days}, nil
}

// SendReminder は当日未服用の薬を一覧にしたリマインダーメールを送信します
func (s *dashboardService) SendReminder(ctx context.Context, tenantID uuid.UUID, req *model.ReminderRequest) error {
	logger := middleware.GetLogger(ctx)

	medications, err := s.medRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error loading medications for reminder", "error", err)
		return model.ErrInternalServer
	}
	if len(medications) == 0 {
		return model.NewAppError("NO_MEDICATIONS", "服用中の薬が登録されていません。", "", model.ErrInvalidInput)
	}

	now := time.Now()
	todayKey := dateutil.DateKey(now)
	logs, err := s.logRepo.FindByTenantInRange(ctx, s.db, tenantID, todayKey, todayKey)
	if err != nil {
		logger.Error("Error loading today's logs for reminder", "error", err)
		return model.ErrInternalServer
	}
	taken := make(map[uuid.UUID]bool, len(logs))
	for _, l := range logs {
		if l.Status == model.LogStatusTaken {
			taken[l.MedicationID] = true
		}
	}

	var pending []string
	for _, m := range medications {
		if !taken[m.MedicationID] {
			pending = append(pending, fmt.Sprintf("・%s (%s) %s", m.Name, m.Dosage, m.Schedule))
		}
	}

	subject := "【おくすり管理】本日の服薬リマインダー"
	var body string
	if len(pending) == 0 {
		body = fmt.Sprintf("%s の服薬はすべて記録済みです。\n\nご確認ありがとうございます。", todayKey)
	} else {
		body = fmt.Sprintf("%s にまだ服用が記録されていない薬があります:\n\n%s\n\n服用後はアプリで記録をお願いします。", todayKey, strings.Join(pending, "\n"))
	}

	if err := s.mailer.Send(ctx, req.Email, subject, body); err != nil {
		logger.Error("Failed to send reminder email", "error", err, "to", req.Email)
		return model.NewAppError("EMAIL_SEND_FAILED", "リマインダーメールの送信に失敗しました。", "", err)
	}

	logger.Info("Reminder email sent", "to", req.Email, "pending_count", len(pending))
	return nil
}

// foldDailyRecords はログを「その日の全薬を服用できたか」の日単位レコードへ畳み込みます
func (s *dashboardService) foldDailyRecords(medications []*model.Medication, logs []*model.MedicationLog, now time.Time) []adherence.Record {
	activeMedIDs := make([]uuid.UUID, 0, len(medications))
	for _, m := range medications {
		activeMedIDs = append(activeMedIDs, m.MedicationID)
	}

	byDate := make(map[string]map[uuid.UUID]model.LogStatus)
	for _, l := range logs {
		if byDate[l.Date] == nil {
			byDate[l.Date] = make(map[uuid.UUID]model.LogStatus)
		}
		byDate[l.Date][l.MedicationID] = l.Status
	}

	records := make([]adherence.Record, 0, len(byDate))
	for date, dayLogs := range byDate {
		day, err := dateutil.ParseDateKey(date)
		if err != nil {
			continue
		}
		status := adherence.ClassifyDay(dayLogs, activeMedIDs, day, now)
		records = append(records, adherence.Record{
			Date:  date,
			Taken: status == model.LogStatusTaken,
		})
	}
	return records
}
