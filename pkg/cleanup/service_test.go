package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufal/maskit-web/pkg/config"
	"github.com/ufal/maskit-web/pkg/render"
	"github.com/ufal/maskit-web/pkg/session"
)

type fakeGauge struct {
	mu     sync.Mutex
	values []int
}

func (g *fakeGauge) SetActiveSessions(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values = append(g.values, n)
}

func (g *fakeGauge) last() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.values) == 0 {
		return 0, false
	}
	return g.values[len(g.values)-1], true
}

func TestService_PrunesIdleSessions(t *testing.T) {
	manager := session.NewManager(render.DefaultDisplayOptions())
	stale := manager.Create()
	fresh := manager.Create()

	time.Sleep(30 * time.Millisecond)
	fresh.SetOptions(render.DisplayOptions{})

	cfg := &config.ServerConfig{SessionTTL: 20 * time.Millisecond, CleanupInterval: time.Hour}
	gauge := &fakeGauge{}
	svc := NewService(cfg, manager, gauge)
	svc.sweep()

	_, err := manager.Get(stale.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = manager.Get(fresh.ID)
	assert.NoError(t, err)

	n, ok := gauge.last()
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestService_KeepsSessionsInFlight(t *testing.T) {
	manager := session.NewManager(render.DefaultDisplayOptions())
	s := manager.Create()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.BeginSubmission(cancel)

	time.Sleep(30 * time.Millisecond)

	cfg := &config.ServerConfig{SessionTTL: 20 * time.Millisecond, CleanupInterval: time.Hour}
	NewService(cfg, manager, nil).sweep()

	_, err := manager.Get(s.ID)
	assert.NoError(t, err)
}

func TestService_StartStop(t *testing.T) {
	manager := session.NewManager(render.DefaultDisplayOptions())
	manager.Create()

	cfg := &config.ServerConfig{SessionTTL: time.Hour, CleanupInterval: 10 * time.Millisecond}
	gauge := &fakeGauge{}
	svc := NewService(cfg, manager, gauge)

	svc.Start(context.Background())
	svc.Start(context.Background())

	require.Eventually(t, func() bool {
		n, ok := gauge.last()
		return ok && n == 1
	}, time.Second, 5*time.Millisecond)

	svc.Stop()
	svc.Stop()
}
