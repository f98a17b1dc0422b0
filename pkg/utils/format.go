package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatDuration 把秒数格式化为 H:MM:SS 或 M:SS
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatCount 播放量/订阅数的简写 1.5K 2.5M
func FormatCount(n int64) string {
	switch {
	case n >= 1000000:
		return oneDecimal(float64(n)/1000000) + "M"
	case n >= 1000:
		return oneDecimal(float64(n)/1000) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// 四舍五入到一位小数 1.25 -> 1.3
func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// RelativeUnit 一个时间单位的单数和复数写法
type RelativeUnit struct {
	One   string
	Other string
}

func (u RelativeUnit) word(n int64) string {
	if n == 1 {
		return u.One
	}
	return u.Other
}

// RelativeLocale 相对时间的本地化文案
type RelativeLocale struct {
	Year    RelativeUnit
	Month   RelativeUnit
	Day     RelativeUnit
	Hour    RelativeUnit
	Minute  RelativeUnit
	Ago     string
	JustNow string
}

var LocaleEN = RelativeLocale{
	Year:    RelativeUnit{"year", "years"},
	Month:   RelativeUnit{"month", "months"},
	Day:     RelativeUnit{"day", "days"},
	Hour:    RelativeUnit{"hour", "hours"},
	Minute:  RelativeUnit{"minute", "minutes"},
	Ago:     "ago",
	JustNow: "just now",
}

var LocaleRU = RelativeLocale{
	Year:    RelativeUnit{"год", "лет"},
	Month:   RelativeUnit{"месяц", "месяцев"},
	Day:     RelativeUnit{"день", "дней"},
	Hour:    RelativeUnit{"час", "часов"},
	Minute:  RelativeUnit{"минуту", "минут"},
	Ago:     "назад",
	JustNow: "только что",
}

func FormatRelativeTime(t time.Time) string {
	return FormatRelativeTimeAt(t, time.Now(), LocaleEN)
}

// FormatRelativeTimeAt 月按30天 年按365天计算 未来时间视为刚刚
func FormatRelativeTimeAt(t, now time.Time, locale RelativeLocale) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := int64(elapsed / time.Minute)
	hours := minutes / 60
	days := hours / 24
	months := days / 30
	years := days / 365

	switch {
	case years > 0:
		return fmt.Sprintf("%d %s %s", years, locale.Year.word(years), locale.Ago)
	case months > 0:
		return fmt.Sprintf("%d %s %s", months, locale.Month.word(months), locale.Ago)
	case days > 0:
		return fmt.Sprintf("%d %s %s", days, locale.Day.word(days), locale.Ago)
	case hours > 0:
		return fmt.Sprintf("%d %s %s", hours, locale.Hour.word(hours), locale.Ago)
	case minutes > 0:
		return fmt.Sprintf("%d %s %s", minutes, locale.Minute.word(minutes), locale.Ago)
	}
	return locale.JustNow
}
