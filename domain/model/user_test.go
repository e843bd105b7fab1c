package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreatedAtOrNow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	fresh := User{ID: "user-a"}
	require.Equal(t, now, fresh.CreatedAtOrNow(now))

	created := now.AddDate(-1, 0, 0)
	existing := User{ID: "user-b", CreatedAt: created}
	require.Equal(t, created, existing.CreatedAtOrNow(now))
}
