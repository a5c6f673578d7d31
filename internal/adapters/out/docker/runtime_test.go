package docker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/domain"
)

// fakeDaemon records the calls made against a minimal Docker API.
type fakeDaemon struct {
	mu    sync.Mutex
	calls []string
}

func (d *fakeDaemon) record(r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, r.Method+" "+strings.TrimPrefix(r.URL.Path, "/v1.41"))
}

func (d *fakeDaemon) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

func newRuntimeForHTTPServer(t *testing.T, server *httptest.Server) *Runtime {
	t.Helper()

	host := strings.TrimPrefix(server.URL, "http://")
	cli, err := client.NewClientWithOpts(client.WithHost("tcp://"+host), client.WithVersion("1.41"), client.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	return NewRuntimeWithClient(cli)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "No such " + what})
}

func TestRuntime_CreateContainer(t *testing.T) {
	daemon := &fakeDaemon{}
	var created map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		daemon.record(r)
		switch path := strings.TrimPrefix(r.URL.Path, "/v1.41"); {
		case path == "/images/create":
			_, _ = w.Write([]byte(`{"status":"Pulling from library/alpine"}` + "\n" + `{"status":"Download complete"}` + "\n"))
		case path == "/containers/create":
			assert.Equal(t, "box1", r.URL.Query().Get("name"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			writeJSON(w, http.StatusCreated, map[string]any{"Id": "abc123", "Warnings": []string{}})
		case path == "/containers/abc123/start":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	id, err := runtime.CreateContainer(context.Background(), domain.ContainerSpec{
		Name:   "box1",
		Image:  "alpine",
		Cmd:    []string{"tail", "-f", "/dev/null"},
		Labels: map[string]string{domain.LabelOwner: "u1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
	assert.Equal(t, []string{
		"POST /images/create",
		"POST /containers/create",
		"POST /containers/abc123/start",
	}, daemon.Calls())
	assert.Equal(t, "alpine", created["Image"])
	assert.Equal(t, true, created["Tty"])
	assert.Equal(t, map[string]any{domain.LabelOwner: "u1"}, created["Labels"])
}

func TestRuntime_CreateContainer_RemovesWhenStartFails(t *testing.T) {
	daemon := &fakeDaemon{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		daemon.record(r)
		switch path := strings.TrimPrefix(r.URL.Path, "/v1.41"); {
		case path == "/images/create":
			_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
		case path == "/containers/create":
			writeJSON(w, http.StatusCreated, map[string]any{"Id": "abc123"})
		case path == "/containers/abc123/start":
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "cannot start"})
		case path == "/containers/abc123" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	_, err := runtime.CreateContainer(context.Background(), domain.ContainerSpec{Name: "box1", Image: "alpine"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start container")
	assert.Contains(t, daemon.Calls(), "DELETE /containers/abc123")
}

func TestRuntime_CreateContainer_UnknownImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.TrimPrefix(r.URL.Path, "/v1.41"); {
		case path == "/images/create":
			_, _ = w.Write([]byte(`{"errorDetail":{"message":"manifest unknown"},"error":"manifest unknown"}` + "\n"))
		case strings.HasPrefix(path, "/images/") && strings.HasSuffix(path, "/json"):
			notFound(w, "image")
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	_, err := runtime.CreateContainer(context.Background(), domain.ContainerSpec{Name: "box1", Image: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestRuntime_RemoveContainer(t *testing.T) {
	daemon := &fakeDaemon{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		daemon.record(r)
		switch path := strings.TrimPrefix(r.URL.Path, "/v1.41"); {
		case path == "/containers/abc123/json":
			writeJSON(w, http.StatusOK, map[string]any{"Id": "abc123", "State": map[string]any{"Status": "running", "Running": true}})
		case path == "/containers/abc123/stop":
			assert.Equal(t, "10", r.URL.Query().Get("t"))
			w.WriteHeader(http.StatusNoContent)
		case path == "/containers/abc123" && r.Method == http.MethodDelete:
			assert.Equal(t, "1", r.URL.Query().Get("force"))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	require.NoError(t, runtime.RemoveContainer(context.Background(), "abc123"))
	assert.Equal(t, []string{
		"GET /containers/abc123/json",
		"POST /containers/abc123/stop",
		"DELETE /containers/abc123",
	}, daemon.Calls())
}

func TestRuntime_RemoveContainer_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notFound(w, "container: abc123")
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	err := runtime.RemoveContainer(context.Background(), "abc123")
	assert.ErrorIs(t, err, domain.ErrContainerNotFound)
}

func TestRuntime_InspectContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/abc123/json", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"Id":     "abc123",
			"Name":   "/box1",
			"Config": map[string]any{"Image": "alpine"},
			"State": map[string]any{
				"Status":    "exited",
				"Running":   false,
				"StartedAt": "2025-03-01T12:00:00.5Z",
			},
		})
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	state, err := runtime.InspectContainer(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "box1", state.Name)
	assert.Equal(t, "alpine", state.Image)
	assert.Equal(t, domain.ContainerStatusExited, state.Status)
	assert.False(t, state.Running)
	assert.Equal(t, 2025, state.StartedAt.Year())
}

func TestRuntime_InspectContainer_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notFound(w, "container: abc123")
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	_, err := runtime.InspectContainer(context.Background(), "abc123")
	assert.ErrorIs(t, err, domain.ErrContainerNotFound)
}

func TestRuntime_InspectContainer_DaemonError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "daemon is sad"})
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	_, err := runtime.InspectContainer(context.Background(), "abc123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrContainerNotFound)
}

func TestRuntime_Version(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/version", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"Version": "27.5.1"})
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	version, err := runtime.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "27.5.1", version)
}

func TestToStatus(t *testing.T) {
	assert.Equal(t, domain.ContainerStatusRunning, toStatus("running"))
	assert.Equal(t, domain.ContainerStatusDead, toStatus("dead"))
	assert.Equal(t, domain.ContainerStatusUnknown, toStatus("removing"))
}
