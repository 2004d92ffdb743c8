package cache

import (
	"time"
)

// DefaultRefreshHour は銘柄一覧キャッシュを更新する時刻（UTC）です。
// Alpha Vantageの上場銘柄リストは1日1回更新されます。
const DefaultRefreshHour = 8

// TimeUntilNext は now から次の hour 時（loc基準）までの期間を返します。
// 既にその時刻ちょうどか過ぎている場合は翌日の同時刻を使用します。
func TimeUntilNext(now time.Time, hour int, loc *time.Location) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の指定時刻が既に過ぎている場合は明日の同時刻を使用
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
