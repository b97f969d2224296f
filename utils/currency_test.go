package utils

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func TestCurrencyFormatterRussianGrouping(t *testing.T) {
	f, err := NewCurrencyFormatter("ru-RU", "₽")
	require.NoError(t, err)

	got := f.Format(15000)
	assert.True(t, strings.HasSuffix(got, " ₽"), "got %q", got)
	assert.Equal(t, "15000", digitsOnly(got))
	assert.NotEqual(t, "15000 ₽", got, "expected a group separator")

	assert.Equal(t, "500 ₽", f.Format(500))
}

func TestCurrencyFormatterEnglishGrouping(t *testing.T) {
	f, err := NewCurrencyFormatter("en-US", "$")
	require.NoError(t, err)

	assert.Equal(t, "1,000 $", f.Format(1000))
	assert.Equal(t, "1,000", f.Number(1000))
}

func TestCurrencyFormatterWithoutSign(t *testing.T) {
	f, err := NewCurrencyFormatter("en-US", "")
	require.NoError(t, err)

	assert.Equal(t, "10,000", f.Format(10000))
}

func TestCurrencyFormatterRejectsBadLocale(t *testing.T) {
	_, err := NewCurrencyFormatter("not a locale!!", "₽")
	assert.Error(t, err)
}
