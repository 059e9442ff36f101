package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-sheet/internal/pkg/clock/mock"
)

func TestSystemClockIsUTC(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := clock.New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, now.After(before))
}

func TestUnix(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockclock.NewMockClock(ctrl)
	c.EXPECT().Now().Return(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	assert.Equal(t, int64(1735787045), clock.Unix(c))
}
