package holiday

import (
	"fmt"
	"time"
)

// DateLayout は休日設定で使う日付の形式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// maxOffset はUTCからのオフセットとして許容する最大値
const maxOffset = 14 * time.Hour

// Calendar は休日の一覧と「今日」を判定するタイムゾーンを保持する
type Calendar struct {
	holidays map[string]struct{}
	location *time.Location
}

// NewCalendar は新しいCalendarを作成する
func NewCalendar(dates []string, offset time.Duration) (*Calendar, error) {
	if offset < -maxOffset || offset > maxOffset {
		return nil, fmt.Errorf("utc offset out of range: %s", offset)
	}
	if offset%time.Minute != 0 {
		return nil, fmt.Errorf("utc offset must be a whole number of minutes: %s", offset)
	}

	holidays := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		d, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday %q: %w", date, err)
		}
		holidays[d.Format(DateLayout)] = struct{}{}
	}

	return &Calendar{
		holidays: holidays,
		location: time.FixedZone(zoneName(offset), int(offset.Seconds())),
	}, nil
}

// Today は設定されたオフセットでの日付を返す
func (c *Calendar) Today(now time.Time) string {
	return now.In(c.location).Format(DateLayout)
}

// IsHoliday はnowが休日にあたるかどうかを返す
func (c *Calendar) IsHoliday(now time.Time) bool {
	_, ok := c.holidays[c.Today(now)]
	return ok
}

// Len は登録されている休日の数を返す
func (c *Calendar) Len() int {
	return len(c.holidays)
}

// zoneName はオフセットからUTC+09:00形式のゾーン名を作る
func zoneName(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := int(offset / time.Hour)
	minutes := int((offset % time.Hour) / time.Minute)
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
