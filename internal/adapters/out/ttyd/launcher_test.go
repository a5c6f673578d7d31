package ttyd

import (
	"context"
	"net"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreePort(t *testing.T) {
	port, err := freePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)
}

func TestWaitForPort_Listening(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	port := l.Addr().(*net.TCPAddr).Port
	err = waitForPort(context.Background(), port, time.Second, make(chan struct{}))
	assert.NoError(t, err)
}

func TestWaitForPort_Timeout(t *testing.T) {
	port, err := freePort()
	require.NoError(t, err)

	err = waitForPort(context.Background(), port, 150*time.Millisecond, make(chan struct{}))
	assert.ErrorContains(t, err, "did not listen")
}

func TestWaitForPort_ProcessExited(t *testing.T) {
	port, err := freePort()
	require.NoError(t, err)

	exited := make(chan struct{})
	close(exited)
	err = waitForPort(context.Background(), port, time.Second, exited)
	assert.ErrorContains(t, err, "exited before listening")
}

func TestLauncher_MissingBinary(t *testing.T) {
	l := NewLauncher(Config{Path: "/nonexistent/ttyd"})
	_, err := l.Launch(context.Background(), "r1")
	assert.ErrorContains(t, err, "failed to start ttyd")
}

func TestLauncher_ProcessExitsEarly(t *testing.T) {
	falseBin, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not available")
	}

	l := NewLauncher(Config{Path: falseBin, ReadyTimeout: 2 * time.Second})
	start := time.Now()
	_, err = l.Launch(context.Background(), "r1")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
