package model

import "github.com/google/uuid"

// MedicationTodayResponse はダッシュボードに出す「今日の1件分」のDTO
type MedicationTodayResponse struct {
	MedicationID   uuid.UUID `json:"medication_id"`
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"`
	Schedule       string    `json:"schedule"`
	StatusForToday LogStatus `json:"status_for_today"`
}

// AdherenceSnapshotResponse は服薬状況のサマリDTO。
// 永続化はせず、リクエストの度にログから再計算します。
type AdherenceSnapshotResponse struct {
	AdherenceRate int                       `json:"adherence_rate"` // 0-100
	CurrentStreak int                       `json:"current_streak"` // 連続服用日数
	MissedCount   int                       `json:"missed_count"`
	HasTakenToday bool                      `json:"has_taken_today"`
	TakenDates    []string                  `json:"taken_dates"` // カレンダー表示用の日付キー
	Medications   []MedicationTodayResponse `json:"medications"`
}

// CalendarResponse は月間カレンダーの日別ステータスDTO
type CalendarResponse struct {
	Month string               `json:"month"` // YYYY-MM
	Days  map[string]LogStatus `json:"days"`  // 日付キー -> taken/missed/pending
}

// ReminderRequest は服薬リマインダーメール送信リクエストのDTO
type ReminderRequest struct {
	Email string `json:"email" validate:"required,email"`
}
