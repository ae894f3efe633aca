package dateutil

import (
	"fmt"
	"time"
)

// DateKeyLayout は日付キーの書式 (YYYY-MM-DD)。
// ストアとAPI境界の日付はすべてこの形式に固定し、それ以外は境界で弾きます。
const DateKeyLayout = "2006-01-02"

// DateKey は時刻をその暦日のキー文字列に変換します。
// 日境界はサーバのローカルタイムゾーンで統一する方針です (UTC正規化はしない)。
// 計算の基準時刻はすべてサーバ側で取るため、クライアントのタイムゾーン差は持ち込まれません。
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey は日付キーを厳密にパースします。
// "2024-6-1" のようなゼロ埋めなしや、存在しない日付はエラーになります。
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil.ParseDateKey: invalid date key %q: %w", s, err)
	}
	return t, nil
}

// StartOfDay はローカルタイムでその日の0時を返します
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
