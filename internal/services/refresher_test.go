package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUpdater struct {
	calls int32
	err   error
	done  chan struct{}
}

func (f *fakeUpdater) UpdateInjuries(context.Context) error {
	atomic.AddInt32(&f.calls, 1)
	select {
	case f.done <- struct{}{}:
	default:
	}
	return f.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestInjuryRefresherRejectsBadSchedule(t *testing.T) {
	refresher := NewInjuryRefresher(&fakeUpdater{done: make(chan struct{}, 1)}, "not a schedule", quietLogger())
	assert.Error(t, refresher.Start())
}

func TestInjuryRefresherRunsImmediateRefresh(t *testing.T) {
	updater := &fakeUpdater{done: make(chan struct{}, 1)}
	refresher := NewInjuryRefresher(updater, "0 */6 * * *", quietLogger())

	require.NoError(t, refresher.Start())
	defer refresher.Stop()

	select {
	case <-updater.done:
	case <-time.After(2 * time.Second):
		t.Fatal("boot refresh never ran")
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&updater.calls), int32(1))

	status := refresher.Status()
	assert.Equal(t, true, status["is_running"])
	assert.Equal(t, "0 */6 * * *", status["schedule"])
}

func TestInjuryRefresherRecordsLastError(t *testing.T) {
	updater := &fakeUpdater{done: make(chan struct{}, 1), err: fmt.Errorf("feed unreachable")}
	refresher := NewInjuryRefresher(updater, "0 */6 * * *", quietLogger())

	require.NoError(t, refresher.Start())
	defer refresher.Stop()

	<-updater.done
	// The refresh goroutine records its outcome after signalling; poll
	// briefly instead of assuming an ordering.
	require.Eventually(t, func() bool {
		_, ok := refresher.Status()["last_error"]
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "feed unreachable", refresher.Status()["last_error"])
}

type blockingUpdater struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingUpdater) UpdateInjuries(context.Context) error {
	b.started <- struct{}{}
	<-b.release
	return nil
}

func TestInjuryRefresherStopWaitsForInFlightRefresh(t *testing.T) {
	updater := &blockingUpdater{started: make(chan struct{}, 4), release: make(chan struct{})}
	refresher := NewInjuryRefresher(updater, "@every 1s", quietLogger())
	require.NoError(t, refresher.Start())

	// Boot refresh plus the first scheduled run, both parked inside the
	// updater so Stop has something in flight to wait for.
	for i := 0; i < 2; i++ {
		select {
		case <-updater.started:
		case <-time.After(3 * time.Second):
			t.Fatal("refresh never started")
		}
	}

	stopped := make(chan struct{})
	go func() {
		refresher.Stop()
		close(stopped)
	}()

	// Let Stop begin draining before the in-flight runs are released;
	// it must not hold the mutex the runs need to record their outcome.
	time.Sleep(50 * time.Millisecond)
	close(updater.release)

	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return after the in-flight refresh finished")
	}
	assert.Equal(t, false, refresher.Status()["is_running"])
}

func TestInjuryRefresherDoubleStart(t *testing.T) {
	updater := &fakeUpdater{done: make(chan struct{}, 1)}
	refresher := NewInjuryRefresher(updater, "0 */6 * * *", quietLogger())

	require.NoError(t, refresher.Start())
	defer refresher.Stop()
	assert.Error(t, refresher.Start())
}
