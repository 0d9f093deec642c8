package promo

import (
	"testing"
	"time"

	"motorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestRegistry() (*Registry, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry(clock.Now)
	r.Load([]models.Promotion{{
		ID:       "flash",
		Name:     "Flash Sale",
		Kind:     models.PromoFlashSale,
		Duration: 10 * time.Minute,
		Active:   true,
	}})
	return r, clock
}

func TestCountdownRunsDown(t *testing.T) {
	r, clock := newTestRegistry()

	assert.True(t, r.Active("flash"))
	assert.Equal(t, 10*time.Minute, r.Remaining("flash"))

	clock.Advance(4 * time.Minute)
	assert.Equal(t, 6*time.Minute, r.Remaining("flash"))
	assert.True(t, r.Active("flash"))
}

func TestExpiryIsTerminal(t *testing.T) {
	r, clock := newTestRegistry()

	clock.Advance(10 * time.Minute)
	assert.False(t, r.Active("flash"))
	assert.Zero(t, r.Remaining("flash"))

	// Waiting longer never restarts the countdown.
	clock.Advance(time.Hour)
	assert.False(t, r.Active("flash"))
}

func TestResetRestartsFromConfiguredDuration(t *testing.T) {
	r, clock := newTestRegistry()
	clock.Advance(15 * time.Minute)
	require.False(t, r.Active("flash"))

	p, err := r.Reset("flash")
	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.Equal(t, 10*time.Minute, r.Remaining("flash"))
	assert.True(t, r.Active("flash"))
}

func TestResetUnknownPromotion(t *testing.T) {
	r, _ := newTestRegistry()
	_, err := r.Reset("nope")
	assert.Error(t, err)
}

func TestExpireMarksInactiveOnce(t *testing.T) {
	r, _ := newTestRegistry()

	assert.True(t, r.Expire("flash"))
	assert.False(t, r.Active("flash"))
	assert.False(t, r.Expire("flash"), "expiring an inactive promotion reports false")
	assert.False(t, r.Expire("unknown"))
}

func TestLoadKeepsRunningCountdown(t *testing.T) {
	r, clock := newTestRegistry()
	clock.Advance(3 * time.Minute)

	// A feed refresh re-delivers the same promotion; the clock must not
	// restart.
	r.Load([]models.Promotion{{
		ID:       "flash",
		Name:     "Flash Sale (renamed)",
		Kind:     models.PromoFlashSale,
		Duration: 10 * time.Minute,
		Active:   true,
	}})
	assert.Equal(t, 7*time.Minute, r.Remaining("flash"))

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Flash Sale (renamed)", list[0].Name)
}

func TestListRendersCountdown(t *testing.T) {
	r, clock := newTestRegistry()
	clock.Advance(8*time.Minute + 55*time.Second)

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, "01:05", list[0].Remaining)

	clock.Advance(2 * time.Minute)
	list = r.List()
	assert.Equal(t, "00:00", list[0].Remaining)
	assert.False(t, list[0].Active)
}

func TestFormatMMSS(t *testing.T) {
	assert.Equal(t, "00:00", FormatMMSS(0))
	assert.Equal(t, "00:00", FormatMMSS(-time.Minute))
	assert.Equal(t, "00:59", FormatMMSS(59*time.Second))
	assert.Equal(t, "01:00", FormatMMSS(time.Minute))
	assert.Equal(t, "10:05", FormatMMSS(10*time.Minute+5*time.Second))
	assert.Equal(t, "90:00", FormatMMSS(90*time.Minute))
}
