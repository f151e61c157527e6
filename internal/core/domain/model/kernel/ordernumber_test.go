package kernel_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediorder/internal/core/domain/model/kernel"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	t.Run("format is ORD, millis, dash, hex suffix", func(t *testing.T) {
		n := kernel.GenerateOrderNumber(now)

		require.NoError(t, n.Validate())
		assert.Regexp(t, regexp.MustCompile(`^ORD\d+-[0-9A-F]{6}$`), n.String())

		millisPart := strings.TrimPrefix(strings.Split(n.String(), "-")[0], "ORD")
		millis, err := strconv.ParseInt(millisPart, 10, 64)
		require.NoError(t, err)
		assert.Equal(t, now.UnixMilli(), millis)
	})

	t.Run("numbers generated at the same instant differ", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			n := kernel.GenerateOrderNumber(now)
			_, dup := seen[n.String()]
			require.False(t, dup, "duplicate order number %s", n)
			seen[n.String()] = struct{}{}
		}
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		n, err := kernel.OrderNumberFromString("ORD1724700000000-5F3A2B")
		require.NoError(t, err)
		assert.Equal(t, "ORD1724700000000-5F3A2B", n.String())
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("")
		require.Error(t, err)
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	a, err := kernel.OrderNumberFromString("ORD1-AAAAAA")
	require.NoError(t, err)
	b, err := kernel.OrderNumberFromString("ORD1-AAAAAA")
	require.NoError(t, err)
	c, err := kernel.OrderNumberFromString("ORD2-BBBBBB")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderNumber_Validate_ZeroValue(t *testing.T) {
	var n kernel.OrderNumber

	require.Error(t, n.Validate())
}
