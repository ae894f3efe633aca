// internal/adherence/calculator_test.go
package adherence

import (
	"testing"
	"time"

	"med_adherence_keep/internal/dateutil"
	"med_adherence_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// テスト用の基準日 (2024-06-10)。ローカルタイムで固定する
func refDate() time.Time {
	return time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local)
}

func TestCompute(t *testing.T) {
	ref := refDate()

	tests := []struct {
		name          string
		records       []Record
		windowDays    int
		wantRate      int
		wantStreak    int
		wantMissed    int
		wantTakenNow  bool
		wantTakenDays int
	}{
		{
			name: "正常系: 代表シナリオ (06-08で連続が途切れる)",
			records: []Record{
				{Date: "2024-06-10", Taken: true},
				{Date: "2024-06-09", Taken: true},
				{Date: "2024-06-08", Taken: false},
				{Date: "2024-06-07", Taken: true},
			},
			windowDays:    30,
			wantRate:      10, // 3/30 = 10%
			wantStreak:    2,
			wantMissed:    1,
			wantTakenNow:  true,
			wantTakenDays: 3,
		},
		{
			name:          "正常系: 記録なし",
			records:       []Record{},
			windowDays:    30,
			wantRate:      0,
			wantStreak:    0,
			wantMissed:    0,
			wantTakenNow:  false,
			wantTakenDays: 0,
		},
		{
			name: "正常系: 前日が未服用なら過去の履歴に関わらず連続0",
			records: []Record{
				{Date: "2024-06-09", Taken: false},
				{Date: "2024-06-08", Taken: true},
				{Date: "2024-06-07", Taken: true},
			},
			windowDays:   30,
			wantRate:     7, // 2/30 -> 6.67 -> 7 (四捨五入)
			wantStreak:   0, // 今日に記録がないため即途切れ
			wantMissed:   1,
			wantTakenNow: false,
			wantTakenDays: 2,
		},
		{
			name: "正常系: 当日の未服用記録は missed に数えない",
			records: []Record{
				{Date: "2024-06-10", Taken: false},
				{Date: "2024-06-09", Taken: false},
			},
			windowDays:   30,
			wantRate:     0,
			wantStreak:   0,
			wantMissed:   1, // 06-09のみ
			wantTakenNow: false,
		},
		{
			name: "正常系: ウィンドウ外の古い未服用記録も missed には数える",
			records: []Record{
				{Date: "2023-01-15", Taken: false},
				{Date: "2023-01-10", Taken: true},
				{Date: "2024-06-10", Taken: true},
			},
			windowDays:    30,
			wantRate:      3, // 1/30 -> 3.33 -> 3
			wantStreak:    1,
			wantMissed:    1,
			wantTakenNow:  true,
			wantTakenDays: 2, // TakenDates はウィンドウ制限なし
		},
		{
			name: "正常系: 同一日付の重複は後勝ち",
			records: []Record{
				{Date: "2024-06-10", Taken: false},
				{Date: "2024-06-10", Taken: true}, // upsertと同じポリシー
			},
			windowDays:   30,
			wantRate:     3,
			wantStreak:   1,
			wantMissed:   0,
			wantTakenNow: true,
			wantTakenDays: 1,
		},
		{
			name: "境界系: windowDays=0 はゼロ除算せず率0",
			records: []Record{
				{Date: "2024-06-10", Taken: true},
			},
			windowDays:    0,
			wantRate:      0,
			wantStreak:    0,
			wantMissed:    0,
			wantTakenNow:  true,
			wantTakenDays: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.records, tt.windowDays, ref)

			assert.Equal(t, tt.wantRate, got.AdherenceRate)
			assert.Equal(t, tt.wantStreak, got.CurrentStreak)
			assert.Equal(t, tt.wantMissed, got.MissedCount)
			assert.Equal(t, tt.wantTakenNow, got.HasTakenToday)
			if tt.wantTakenDays > 0 {
				assert.Len(t, got.TakenDates, tt.wantTakenDays)
			}

			// 出力保証: 率は常に0-100、各値は非負
			assert.GreaterOrEqual(t, got.AdherenceRate, 0)
			assert.LessOrEqual(t, got.AdherenceRate, 100)
			assert.GreaterOrEqual(t, got.CurrentStreak, 0)
			assert.GreaterOrEqual(t, got.MissedCount, 0)
		})
	}
}

func TestCompute_FullWindow(t *testing.T) {
	// ウィンドウ内の全日が服用済みなら率100%・連続日数はウィンドウ長
	ref := refDate()
	windowDays := 30

	records := make([]Record, 0, 40)
	for i := 0; i < 40; i++ { // ウィンドウより深い履歴を入れても上限で打ち切られる
		records = append(records, Record{Date: dateutil.DateKey(ref.AddDate(0, 0, -i)), Taken: true})
	}

	got := Compute(records, windowDays, ref)
	assert.Equal(t, 100, got.AdherenceRate)
	assert.Equal(t, windowDays, got.CurrentStreak)
	assert.Equal(t, 0, got.MissedCount)
	assert.True(t, got.HasTakenToday)
}

func TestCompute_Idempotent(t *testing.T) {
	// 同一入力なら何度計算しても同一出力 (純粋関数であること)
	ref := refDate()
	records := []Record{
		{Date: "2024-06-10", Taken: true},
		{Date: "2024-06-08", Taken: false},
	}

	first := Compute(records, 30, ref)
	second := Compute(records, 30, ref)
	assert.Equal(t, first, second)
}

func TestCompute_NoRecordForToday(t *testing.T) {
	// 当日の記録がなければ hasTakenToday は必ず false
	ref := refDate()
	records := []Record{
		{Date: "2024-06-09", Taken: true},
		{Date: "2024-06-08", Taken: true},
	}

	got := Compute(records, 30, ref)
	assert.False(t, got.HasTakenToday)
}

func TestClassifyDay(t *testing.T) {
	medA := uuid.New()
	medB := uuid.New()
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		logs   map[uuid.UUID]model.LogStatus
		active []uuid.UUID
		day    time.Time
		want   model.LogStatus
	}{
		{
			name:   "正常系: 全薬服用済みなら taken",
			logs:   map[uuid.UUID]model.LogStatus{medA: model.LogStatusTaken, medB: model.LogStatusTaken},
			active: []uuid.UUID{medA, medB},
			day:    yesterday,
			want:   model.LogStatusTaken,
		},
		{
			name:   "正常系: 当日に一部だけ服用済みなら pending",
			logs:   map[uuid.UUID]model.LogStatus{medA: model.LogStatusTaken},
			active: []uuid.UUID{medA, medB},
			day:    today,
			want:   model.LogStatusPending,
		},
		{
			name:   "正常系: 過去日に一部だけ服用済みなら missed",
			logs:   map[uuid.UUID]model.LogStatus{medA: model.LogStatusTaken},
			active: []uuid.UUID{medA, medB},
			day:    yesterday,
			want:   model.LogStatusMissed,
		},
		{
			name:   "正常系: 過去日にログなしは missed (記録なしは未服用扱い)",
			logs:   map[uuid.UUID]model.LogStatus{},
			active: []uuid.UUID{medA},
			day:    yesterday,
			want:   model.LogStatusMissed,
		},
		{
			name:   "正常系: 未来日は pending",
			logs:   map[uuid.UUID]model.LogStatus{},
			active: []uuid.UUID{medA},
			day:    tomorrow,
			want:   model.LogStatusPending,
		},
		{
			name:   "境界系: 有効な薬が0件なら過去日でも pending",
			logs:   map[uuid.UUID]model.LogStatus{},
			active: []uuid.UUID{},
			day:    yesterday,
			want:   model.LogStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDay(tt.logs, tt.active, tt.day, today)
			assert.Equal(t, tt.want, got)
		})
	}
}
