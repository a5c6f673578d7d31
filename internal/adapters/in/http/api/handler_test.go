package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/adapters/dto"
	"github.com/bnema/boxkeep/internal/adapters/out/ratelimit"
	"github.com/bnema/boxkeep/internal/boundaries/in/mocks"
	"github.com/bnema/boxkeep/internal/domain"
)

const testToken = "s3cret"

type fixture struct {
	bindings *mocks.MockBindingService
	terminal *mocks.MockTerminalService
	health   *mocks.MockHealthService
	server   http.Handler
}

func newFixture(t *testing.T, config Config) *fixture {
	t.Helper()
	f := &fixture{
		bindings: mocks.NewMockBindingService(t),
		terminal: mocks.NewMockTerminalService(t),
		health:   mocks.NewMockHealthService(t),
	}
	if config.Token == "" {
		config.Token = testToken
	}
	logger := log.New(io.Discard)
	f.server = NewServer(NewHandler(f.bindings, f.terminal, f.health), config, logger)
	return f
}

func (f *fixture) do(t *testing.T, method, target, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	if actor != "" {
		req.Header.Set(HeaderActorID, actor)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func activeRecord() *domain.ContainerRecord {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.ContainerRecord{
		ID:        "rec-1",
		Owner:     "u1",
		Name:      "box",
		RuntimeID: "c0ffee",
		Image:     "ubuntu:24.04",
		State:     domain.RecordActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.health.EXPECT().Check(mock.Anything).Return(domain.HealthReport{
			Status: domain.HealthOK,
			Checks: []domain.HealthCheck{{Name: "runtime", OK: true, Detail: "docker 27.5.1"}},
		}).Once()

		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.HealthResponse](t, rec)
		assert.Equal(t, "ok", resp.Status)
		require.Len(t, resp.Checks, 1)
		assert.Equal(t, "docker 27.5.1", resp.Checks[0].Detail)
	})

	t.Run("degraded", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.health.EXPECT().Check(mock.Anything).Return(domain.HealthReport{Status: domain.HealthDegraded}).Once()

		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	f := newFixture(t, Config{})

	for name, header := range map[string]string{
		"missing": "",
		"wrong":   "Bearer nope",
		"scheme":  "Basic " + testToken,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			req.Header.Set(HeaderActorID, "u1")
			rec := httptest.NewRecorder()
			f.server.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAPI_RequiresActor(t *testing.T) {
	f := newFixture(t, Config{})

	rec := f.do(t, http.MethodGet, "/api/containers", "  ", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, "InvalidArgument", resp.Kind)
}

func TestCreate(t *testing.T) {
	f := newFixture(t, Config{})
	f.bindings.EXPECT().Create(mock.Anything, domain.OwnerID("admin"), domain.OwnerID("u1"), "ubuntu:24.04", "box").
		Return(activeRecord(), nil).Once()

	rec := f.do(t, http.MethodPost, "/api/containers", "admin",
		dto.CreateContainerRequest{Owner: " u1 ", Image: "ubuntu:24.04", Name: "box"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[dto.Container](t, rec)
	assert.Equal(t, "rec-1", resp.ID)
	assert.Equal(t, "c0ffee", resp.RuntimeID)
	assert.Equal(t, "active", resp.State)
	assert.Nil(t, resp.DestroyedAt)
}

func TestCreate_InvalidBody(t *testing.T) {
	f := newFixture(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/containers", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set(HeaderActorID, "u1")
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"unauthorized", domain.NewError(domain.KindUnauthorized, "no", nil), http.StatusForbidden, "Unauthorized"},
		{"already owns", domain.NewError(domain.KindAlreadyOwnsContainer, "taken", nil), http.StatusConflict, "AlreadyOwnsContainer"},
		{"name in use", domain.NewError(domain.KindNameInUse, "taken", nil), http.StatusConflict, "NameInUse"},
		{"invalid", domain.NewError(domain.KindInvalidArgument, "bad", nil), http.StatusBadRequest, "InvalidArgument"},
		{"runtime", domain.NewError(domain.KindRuntime, "docker", nil), http.StatusBadGateway, "RuntimeError"},
		{"store", domain.NewError(domain.KindStore, "db", nil), http.StatusServiceUnavailable, "StoreError"},
		{"partial", &domain.PartialFailureError{Owner: "u1", RuntimeID: "c0ffee", Reason: "record lost"}, http.StatusInternalServerError, "PartialFailure"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Config{})
			f.bindings.EXPECT().Create(mock.Anything, domain.OwnerID("u1"), domain.OwnerID(""), "", "box").
				Return(nil, tt.err).Once()

			rec := f.do(t, http.MethodPost, "/api/containers", "u1", dto.CreateContainerRequest{Name: "box"})

			assert.Equal(t, tt.status, rec.Code)
			resp := decode[dto.ErrorResponse](t, rec)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestDestroy(t *testing.T) {
	f := newFixture(t, Config{})
	destroyed := activeRecord()
	destroyed.State = domain.RecordDestroyed
	destroyed.DestroyedAt = destroyed.CreatedAt.Add(time.Minute)
	f.bindings.EXPECT().Destroy(mock.Anything, domain.OwnerID("admin"), domain.OwnerID("u1")).Return(destroyed, nil).Once()

	rec := f.do(t, http.MethodDelete, "/api/containers/u1", "admin", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.Container](t, rec)
	assert.Equal(t, "destroyed", resp.State)
	require.NotNil(t, resp.DestroyedAt)
}

func TestDestroy_NoContainer(t *testing.T) {
	f := newFixture(t, Config{})
	f.bindings.EXPECT().Destroy(mock.Anything, domain.OwnerID("admin"), domain.OwnerID("u1")).
		Return(nil, domain.NewError(domain.KindNoContainer, "owner u1 has no container", nil)).Once()

	rec := f.do(t, http.MethodDelete, "/api/containers/u1", "admin", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NoContainer", decode[dto.ErrorResponse](t, rec).Kind)
}

func TestStatus(t *testing.T) {
	f := newFixture(t, Config{})
	f.bindings.EXPECT().Status(mock.Anything, domain.OwnerID("u1")).Return(&domain.ContainerView{
		Record: *activeRecord(),
		Live:   &domain.LiveState{RuntimeID: "c0ffee", Status: domain.ContainerStatusRunning, Running: true},
	}, nil).Once()

	rec := f.do(t, http.MethodGet, "/api/containers/u1", "admin", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.ContainerView](t, rec)
	assert.Equal(t, "running", resp.Status)
	require.NotNil(t, resp.Live)
	assert.True(t, resp.Live.Running)
}

func TestList(t *testing.T) {
	f := newFixture(t, Config{})
	f.bindings.EXPECT().List(mock.Anything, domain.ListOptions{IncludeDestroyed: true}).Return([]domain.ContainerView{
		{Record: *activeRecord(), ProbeError: "context deadline exceeded"},
	}, nil).Once()

	rec := f.do(t, http.MethodGet, "/api/containers?all=true", "admin", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.ContainersResponse](t, rec)
	require.Len(t, resp.Containers, 1)
	assert.Equal(t, "context deadline exceeded", resp.Containers[0].ProbeError)
	assert.Equal(t, "unknown", resp.Containers[0].Status)
}

func TestList_InvalidFlag(t *testing.T) {
	f := newFixture(t, Config{})

	rec := f.do(t, http.MethodGet, "/api/containers?all=maybe", "admin", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIssueTerminal(t *testing.T) {
	f := newFixture(t, Config{})
	expires := time.Date(2026, 1, 2, 4, 0, 0, 0, time.UTC)
	f.terminal.EXPECT().IssueLink(mock.Anything, domain.OwnerID("u1")).Return(&domain.TerminalLink{
		URL:           "http://term.example/terminal/c0ffee?token=abc",
		ContainerName: "box",
		ExpiresAt:     expires,
	}, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/terminal", "u1", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[dto.TerminalLinkResponse](t, rec)
	assert.Equal(t, "http://term.example/terminal/c0ffee?token=abc", resp.URL)
	assert.True(t, expires.Equal(resp.ExpiresAt))
}

func TestOpenTerminal(t *testing.T) {
	t.Run("redirects to session port", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.terminal.EXPECT().OpenSession(mock.Anything, "c0ffee", "abc").
			Return(&domain.TerminalSession{RuntimeID: "c0ffee", Port: 7681}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "http://term.example:5000/terminal/c0ffee?token=abc", nil)
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "http://term.example:7681", rec.Header().Get("Location"))
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing token", domain.NewError(domain.KindInvalidArgument, "token query parameter is required", nil), http.StatusBadRequest},
		{"bad token", domain.NewError(domain.KindUnauthorized, "invalid or expired token", nil), http.StatusForbidden},
		{"missing container", domain.NewError(domain.KindNotFound, "container not found", nil), http.StatusNotFound},
		{"launch failure", domain.NewError(domain.KindInternal, "failed to start terminal session", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Config{})
			f.terminal.EXPECT().OpenSession(mock.Anything, "c0ffee", mock.Anything).Return(nil, tt.err).Once()

			rec := httptest.NewRecorder()
			f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/terminal/c0ffee?token=x", nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAPI_RateLimitedPerActor(t *testing.T) {
	f := newFixture(t, Config{Limiter: ratelimit.NewMemoryStore(0.001, 1, time.Minute)})
	f.bindings.EXPECT().List(mock.Anything, domain.ListOptions{}).Return([]domain.ContainerView{}, nil).Twice()

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/containers", "u1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(t, http.MethodGet, "/api/containers", "u1", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/containers", "u2", nil).Code)
}
