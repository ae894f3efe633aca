package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	// 時刻部分を捨てて暦日キーになること
	ts := time.Date(2024, 6, 10, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2024-06-10", DateKey(ts))

	// 1桁の月日もゼロ埋めされること
	ts = time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-02", DateKey(ts))
}

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "正常系: 整形済みの日付キー", input: "2024-06-10", wantErr: false},
		{name: "異常系: ゼロ埋めなし", input: "2024-6-10", wantErr: true},
		{name: "異常系: 存在しない日付", input: "2024-02-30", wantErr: true},
		{name: "異常系: 別書式", input: "10/06/2024", wantErr: true},
		{name: "異常系: 空文字", input: "", wantErr: true},
		{name: "異常系: 時刻付き", input: "2024-06-10T00:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			// パース結果を再フォーマットしたら元に戻ること
			assert.Equal(t, tt.input, DateKey(got))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 10, 18, 45, 12, 999, time.Local)
	got := StartOfDay(ts)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), got)
	// 同じ日の任意の時刻から同じ結果になること
	assert.Equal(t, got, StartOfDay(time.Date(2024, 6, 10, 0, 0, 0, 1, time.Local)))
}
