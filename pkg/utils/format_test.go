package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	for s := int64(0); s < 60; s++ {
		assert.Equal(t, fmt.Sprintf("0:%02d", s), FormatDuration(s))
	}
	assert.Equal(t, "3:33", FormatDuration(213))
	assert.Equal(t, "1:01:01", FormatDuration(3661))
	assert.Equal(t, "59:59", FormatDuration(3599))
	assert.Equal(t, "1:00:00", FormatDuration(3600))
	assert.Equal(t, "10:00:00", FormatDuration(36000))
	assert.Equal(t, "0:00", FormatDuration(-5))
}

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:          "0",
		999:        "999",
		1000:       "1.0K",
		1500:       "1.5K",
		1250:       "1.3K",
		999999:     "1000.0K",
		1000000:    "1.0M",
		2500000:    "2.5M",
		1000000000: "1000.0M",
	}
	for n, want := range cases {
		assert.Equal(t, want, FormatCount(n), "n=%d", n)
	}
}

func TestFormatRelativeTimeAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{-time.Hour, "just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{time.Hour, "1 hour ago"},
		{23 * time.Hour, "23 hours ago"},
		{day, "1 day ago"},
		{29 * day, "29 days ago"},
		{30 * day, "1 month ago"},
		{364 * day, "12 months ago"},
		{365 * day, "1 year ago"},
		{3 * 365 * day, "3 years ago"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatRelativeTimeAt(now.Add(-c.ago), now, LocaleEN), "ago=%s", c.ago)
	}
}

func TestFormatRelativeTimeAtRussian(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "только что", FormatRelativeTimeAt(now, now, LocaleRU))
	assert.Equal(t, "1 день назад", FormatRelativeTimeAt(now.Add(-24*time.Hour), now, LocaleRU))
	assert.Equal(t, "2 лет назад", FormatRelativeTimeAt(now.Add(-2*365*24*time.Hour), now, LocaleRU))
}

func TestTransfer(t *testing.T) {
	assert.Equal(t, "abc", Transfer("abc"))
	assert.Equal(t, "42", Transfer(float64(42)))
	assert.Equal(t, "", Transfer(nil))
	assert.Equal(t, []string{"admin", "user"}, TransferStrings([]interface{}{"admin", "user"}))
	assert.Nil(t, TransferStrings(nil))
	assert.Equal(t, []string{"b", "a"}, UniqueStrings([]string{"b", "a", "b"}))
}

func TestCrypt(t *testing.T) {
	hash, err := Crypt("secret-password")
	assert.NoError(t, err)
	assert.True(t, VerifyPassword("secret-password", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}
