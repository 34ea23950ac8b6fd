package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWatcher(t *testing.T, ctrl *gomock.Controller) (*connectivityWatcher, *mock.MockRemoteStore) {
	t.Helper()
	remote := mock.NewMockRemoteStore(ctrl)
	w := NewConnectivityWatcher(remote, logger.Nop()).(*connectivityWatcher)
	return w, remote
}

func TestConnectivityWatcher_FetchCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, remote := newTestWatcher(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Ping(ctx).Return(nil)
	assert.True(t, w.FetchCurrent(ctx))

	remote.EXPECT().Ping(ctx).Return(adapter.ErrServerUnavailable)
	assert.False(t, w.FetchCurrent(ctx))
}

func TestConnectivityWatcher_Probe_FiresOnEdgeOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, remote := newTestWatcher(t, ctrl)
	ctx := context.Background()

	var mu sync.Mutex
	var transitions []bool
	w.Subscribe(func(connected bool) {
		mu.Lock()
		transitions = append(transitions, connected)
		mu.Unlock()
	})

	// down, down, up, up, down: подписчик видит только перепады
	gomock.InOrder(
		remote.EXPECT().Ping(ctx).Return(adapter.ErrServerUnavailable),
		remote.EXPECT().Ping(ctx).Return(adapter.ErrServerUnavailable),
		remote.EXPECT().Ping(ctx).Return(nil),
		remote.EXPECT().Ping(ctx).Return(nil),
		remote.EXPECT().Ping(ctx).Return(adapter.ErrServerUnavailable),
	)

	for i := 0; i < 5; i++ {
		w.probe(ctx)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, transitions)
}

func TestConnectivityWatcher_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, remote := newTestWatcher(t, ctrl)
	ctx := context.Background()

	calls := 0
	unsubscribe := w.Subscribe(func(bool) { calls++ })

	remote.EXPECT().Ping(ctx).Return(nil)
	w.probe(ctx)
	require.Equal(t, 1, calls)

	unsubscribe()

	remote.EXPECT().Ping(ctx).Return(adapter.ErrServerUnavailable)
	w.probe(ctx)
	assert.Equal(t, 1, calls)
}

func TestConnectivityWatcher_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, remote := newTestWatcher(t, ctrl)

	probed := make(chan struct{})
	var once sync.Once
	remote.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) error {
		once.Do(func() { close(probed) })
		return nil
	}).AnyTimes()

	w.Start(context.Background(), 5*time.Millisecond)

	select {
	case <-probed:
	case <-time.After(2 * time.Second):
		t.Fatal("the probe goroutine never ran")
	}

	// Stop блокируется до полного выхода горутины; повторный — no-op
	w.Stop()
	w.Stop()
}

func TestConnectivityWatcher_Start_ReplacesRunningJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, remote := newTestWatcher(t, ctrl)

	remote.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	w.Start(context.Background(), 5*time.Millisecond)
	w.Start(context.Background(), 5*time.Millisecond)
	w.Stop()
}
