package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/internal/utils"
)

func TestSanitizeLogString(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", utils.SanitizeLogString(""))
	})

	t.Run("PlainStringUnchanged", func(t *testing.T) {
		assert.Equal(t, "Boardroom 3", utils.SanitizeLogString("Boardroom 3"))
	})

	t.Run("ControlCharactersReplaced", func(t *testing.T) {
		got := utils.SanitizeLogString("line1\nline2\tend")
		assert.Equal(t, "line1 line2 end", got)
	})

	t.Run("PercentEscaped", func(t *testing.T) {
		assert.Equal(t, "50%% off", utils.SanitizeLogString("50% off"))
	})

	t.Run("LongStringTruncated", func(t *testing.T) {
		got := utils.SanitizeLogString(strings.Repeat("a", 500))
		assert.LessOrEqual(t, len(got), 130)
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}
