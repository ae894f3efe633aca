// internal/adherence/calculator.go
package adherence

import (
	"math"
	"time"

	"med_adherence_keep/internal/dateutil"
	"med_adherence_keep/internal/model"

	"github.com/google/uuid"
)

// Record は「ある暦日に服薬できたか」の1件分です。
// 複数の薬がある場合は「その日の全薬を服用できたか」に畳み込んだ後の値を入れます。
type Record struct {
	Date  string // 日付キー (YYYY-MM-DD)。整形済み前提 (境界で検証する)
	Taken bool
}

// Snapshot は服薬状況の導出サマリです。永続化しません。
type Snapshot struct {
	AdherenceRate int  // ウィンドウ内の服用率 0-100
	CurrentStreak int  // 今日から遡った連続服用日数 (ウィンドウ長で打ち切り)
	MissedCount   int  // 今日より前の未服用記録数 (ウィンドウ外も数える)
	HasTakenToday bool
	TakenDates    map[string]struct{} // 服用済みの全日付キー (カレンダー用、深さ無制限)
}

// Compute はログのスナップショットからサマリを計算する純粋関数です。
// 同一日付の重複はストアのupsertと同じ後勝ちで解決します。
// windowDays が0以下の場合は率・連続日数を計算せずゼロのまま返します (ゼロ除算ガード)。
func Compute(records []Record, windowDays int, referenceDate time.Time) Snapshot {
	byDate := make(map[string]bool, len(records))
	for _, r := range records {
		byDate[r.Date] = r.Taken
	}

	takenDates := make(map[string]struct{})
	for date, taken := range byDate {
		if taken {
			takenDates[date] = struct{}{}
		}
	}

	snap := Snapshot{TakenDates: takenDates}

	if taken, ok := byDate[dateutil.DateKey(referenceDate)]; ok && taken {
		snap.HasTakenToday = true
	}

	// 見逃し数は今日を含めない。当日はまだ服用し得るため missed にはしない
	startOfToday := dateutil.StartOfDay(referenceDate)
	for date, taken := range byDate {
		if taken {
			continue
		}
		d, err := dateutil.ParseDateKey(date)
		if err != nil {
			continue
		}
		if d.Before(startOfToday) {
			snap.MissedCount++
		}
	}

	if windowDays <= 0 {
		return snap
	}

	takenInWindow := 0
	for i := 0; i < windowDays; i++ {
		if byDate[dateutil.DateKey(referenceDate.AddDate(0, 0, -i))] {
			takenInWindow++
		}
	}
	// 四捨五入。分子は分母を超えないので 0-100 に収まる
	snap.AdherenceRate = int(math.Round(float64(takenInWindow) / float64(windowDays) * 100))

	// 記録なしの日も途切れ扱い。コスト上限としてウィンドウ長で打ち切る
	for i := 0; i < windowDays; i++ {
		if !byDate[dateutil.DateKey(referenceDate.AddDate(0, 0, -i))] {
			break
		}
		snap.CurrentStreak++
	}

	return snap
}

// ClassifyDay は1日分のログ群からその日のステータスを導出します。
//   - 有効な全薬に taken のログがあれば taken
//   - 条件を満たさず、その日が過去なら missed
//   - それ以外 (当日・未来) は pending
//
// 有効な薬が0件の日は pending 扱いにします (taken とはみなさない)。
func ClassifyDay(logs map[uuid.UUID]model.LogStatus, activeMedIDs []uuid.UUID, day, today time.Time) model.LogStatus {
	if len(activeMedIDs) == 0 {
		return model.LogStatusPending
	}

	allTaken := true
	for _, id := range activeMedIDs {
		if logs[id] != model.LogStatusTaken {
			allTaken = false
			break
		}
	}
	if allTaken {
		return model.LogStatusTaken
	}

	if dateutil.StartOfDay(day).Before(dateutil.StartOfDay(today)) {
		return model.LogStatusMissed
	}
	return model.LogStatusPending
}
