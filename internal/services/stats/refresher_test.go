package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voltzpay/pix-dashboard/internal/testutil/mocks"
)

func TestRefresher_RunsImmediatelyAndOnTicks(t *testing.T) {
	source := &mocks.MockTransactionSource{}
	service := newTestService(source, mocks.NewMockSettingsStore(nil))

	refresher := NewRefresher(service, 20*time.Millisecond, mocks.NewMockLogger())
	refresher.Start(context.Background())

	assert.Eventually(t, func() bool {
		return source.Fetches() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	refresher.Stop()
}

func TestRefresher_StopTerminatesLoop(t *testing.T) {
	source := &mocks.MockTransactionSource{}
	service := newTestService(source, mocks.NewMockSettingsStore(nil))

	refresher := NewRefresher(service, 10*time.Millisecond, mocks.NewMockLogger())
	refresher.Start(context.Background())
	refresher.Stop()

	after := source.Fetches()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, source.Fetches())
}

// Stopping a refresher that was never started must return instead of
// waiting on a loop that does not exist.
func TestRefresher_StopWithoutStart(t *testing.T) {
	source := &mocks.MockTransactionSource{}
	service := newTestService(source, mocks.NewMockSettingsStore(nil))

	refresher := NewRefresher(service, 10*time.Millisecond, mocks.NewMockLogger())

	done := make(chan struct{})
	go func() {
		refresher.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without a prior Start")
	}
	assert.Equal(t, 0, source.Fetches())
}
