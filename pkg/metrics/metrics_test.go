package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RemoteCalls(t *testing.T) {
	m := NewMetrics("test").(*metrics)

	m.ObserveRemoteCall("process", "ok", 200*time.Millisecond)
	m.ObserveRemoteCall("process", "ok", time.Second)
	m.ObserveRemoteCall("process", "http_error", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.remoteCallsTotal.WithLabelValues("process", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteCallsTotal.WithLabelValues("process", "http_error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.remoteCallTime))
}

func TestMetrics_RendersAndSessions(t *testing.T) {
	m := NewMetrics("test").(*metrics)

	m.IncrementRenders("txt", "plain")
	m.SetActiveSessions(3)
	m.IncrementHTTPRequests()
	m.IncrementHTTPErrors()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("txt", "plain")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpErrorsTotal))
}

func TestMetrics_Registry(t *testing.T) {
	m := NewMetrics("1.2.3")

	expected := `
# HELP maskit_web_system_info The server version.
# TYPE maskit_web_system_info gauge
maskit_web_system_info{version="1.2.3"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.GetRegistry(), strings.NewReader(expected), "maskit_web_system_info"))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *metrics
	assert.NotPanics(t, func() {
		m.IncrementRenders("html", "full")
		m.ObserveRemoteCall("info", "ok", time.Millisecond)
		m.SetActiveSessions(1)
	})
}
