package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Слотов всегда 57: от 08:00 до 22:00 офиса включительно с шагом 15 минут,
// независимо от локальной таймзоны
func TestExecute_SlotCountInvariant(t *testing.T) {
	date := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)

	for _, tz := range []string{"UTC", "America/New_York", "America/Los_Angeles", "Europe/Berlin", "Asia/Tokyo"} {
		t.Run(tz, func(t *testing.T) {
			loc, err := time.LoadLocation(tz)
			require.NoError(t, err)

			uc := NewUseCase(nopLogger{})
			resp, err := uc.Execute(context.Background(), &Request{Date: date, Location: loc})

			require.NoError(t, err)
			assert.Len(t, resp.Slots, 57)
		})
	}
}

func TestExecute_TranslatesToLocalWallClock(t *testing.T) {
	// 2024-03-13: Нью-Йорк на EDT (UTC-4)
	date := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date, Location: time.UTC})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 57)
	assert.Equal(t, "12:00", resp.Slots[0])  // 08:00 EDT
	assert.Equal(t, "12:15", resp.Slots[1])
	assert.Equal(t, "02:00", resp.Slots[56]) // 22:00 EDT, уже следующий день UTC
}

func TestExecute_ReferenceTimezoneUnchanged(t *testing.T) {
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := NewUseCase(nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date, Location: loc})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 57)
	assert.Equal(t, "08:00", resp.Slots[0])
	assert.Equal(t, "22:00", resp.Slots[56])
}

// Переход на летнее время в таймзоне офиса: 2024-03-10 в 02:00 EST часы
// переводятся на 03:00 EDT. Слотов по-прежнему 57, порядок хронологический.
func TestExecute_DSTTransitionDay(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date, Location: time.UTC})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 57)
	// 08:00 EDT 2024-03-10 = 12:00 UTC
	assert.Equal(t, "12:00", resp.Slots[0])
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Location: time.UTC})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
