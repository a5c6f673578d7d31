package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/adapters/dto"
	"github.com/bnema/boxkeep/internal/app"
	"github.com/bnema/boxkeep/internal/boundaries/in"
	"github.com/bnema/boxkeep/internal/boundaries/in/mocks"
	"github.com/bnema/boxkeep/internal/domain"
)

type fakeControlPlane struct {
	bindings *mocks.MockBindingService
	closed   bool
}

func (f *fakeControlPlane) Bindings() in.BindingService { return f.bindings }

func (f *fakeControlPlane) Close() error {
	f.closed = true
	return nil
}

type harness struct {
	cp        *fakeControlPlane
	deps      deps
	opened    int
	lastCfg   app.Config
	confirmed []string
	answer    bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{cp: &fakeControlPlane{bindings: mocks.NewMockBindingService(t)}}
	h.deps = deps{
		loadConfig: func(string) (app.Config, error) {
			var cfg app.Config
			cfg.Log.Level = "info"
			return cfg, nil
		},
		serve: func(_ context.Context, cfg app.Config) error {
			h.lastCfg = cfg
			return nil
		},
		open: func(_ context.Context, cfg app.Config) (ControlPlane, error) {
			h.opened++
			h.lastCfg = cfg
			return h.cp, nil
		},
		confirm: func(message string) (bool, error) {
			h.confirmed = append(h.confirmed, message)
			return h.answer, nil
		},
	}
	return h
}

func (h *harness) run(args ...string) (string, error) {
	cmd := newRootCmd(h.deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func record(state domain.RecordState) *domain.ContainerRecord {
	return &domain.ContainerRecord{
		ID:        "rec-1",
		Owner:     "u1",
		Name:      "box",
		RuntimeID: "0123456789abcdef",
		Image:     "ubuntu:24.04",
		State:     state,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreateCmd(t *testing.T) {
	h := newHarness(t)
	h.cp.bindings.EXPECT().Create(mock.Anything, domain.OwnerID("admin"), domain.OwnerID("u1"), "", "box").
		Return(record(domain.RecordActive), nil).Once()

	out, err := h.run("create", "--actor", "admin", "--owner", " u1", "--name", "box")

	require.NoError(t, err)
	assert.Contains(t, out, "Container box created for u1")
	assert.Contains(t, out, "0123456789ab")
	assert.True(t, h.cp.closed)
}

func TestCreateCmd_RequiresActor(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("create", "--name", "box")

	require.Error(t, err)
	assert.Zero(t, h.opened)
}

func TestCreateCmd_PropagatesDomainError(t *testing.T) {
	h := newHarness(t)
	h.cp.bindings.EXPECT().Create(mock.Anything, domain.OwnerID("u1"), domain.OwnerID(""), "", "box").
		Return(nil, domain.NewError(domain.KindAlreadyOwnsContainer, "owner u1 already has container box", nil)).Once()

	_, err := h.run("create", "--actor", "u1", "--name", "box")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyOwnsContainer)
	assert.Contains(t, FormatError(err), "AlreadyOwnsContainer")
	assert.True(t, h.cp.closed)
}

func TestDestroyCmd(t *testing.T) {
	t.Run("confirmed by flag", func(t *testing.T) {
		h := newHarness(t)
		h.cp.bindings.EXPECT().Destroy(mock.Anything, domain.OwnerID("admin"), domain.OwnerID("u1")).
			Return(record(domain.RecordDestroyed), nil).Once()

		out, err := h.run("destroy", "u1", "--actor", "admin", "--yes")

		require.NoError(t, err)
		assert.Empty(t, h.confirmed)
		assert.Contains(t, out, "Container box destroyed for u1")
	})

	t.Run("target defaults to actor", func(t *testing.T) {
		h := newHarness(t)
		h.answer = true
		h.cp.bindings.EXPECT().Destroy(mock.Anything, domain.OwnerID("u1"), domain.OwnerID("u1")).
			Return(record(domain.RecordDestroyed), nil).Once()

		_, err := h.run("destroy", "--actor", "u1")

		require.NoError(t, err)
		require.Len(t, h.confirmed, 1)
		assert.Contains(t, h.confirmed[0], "u1")
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t)

		out, err := h.run("destroy", "u1", "--actor", "admin")

		require.NoError(t, err)
		assert.Contains(t, out, "i Aborted, nothing was destroyed")
		assert.Zero(t, h.opened)
	})

	t.Run("confirm error", func(t *testing.T) {
		h := newHarness(t)
		h.deps.confirm = func(string) (bool, error) { return false, errors.New("interrupt") }

		_, err := h.run("destroy", "u1", "--actor", "admin")

		require.Error(t, err)
		assert.Zero(t, h.opened)
	})
}

func TestStatusCmd_JSON(t *testing.T) {
	h := newHarness(t)
	h.cp.bindings.EXPECT().Status(mock.Anything, domain.OwnerID("u1")).Return(&domain.ContainerView{
		Record: *record(domain.RecordActive),
		Live:   &domain.LiveState{Status: domain.ContainerStatusRunning, Running: true},
	}, nil).Once()

	out, err := h.run("status", "u1", "-o", "json")

	require.NoError(t, err)
	var view dto.ContainerView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "running", view.Status)
	assert.Equal(t, "box", view.Container.Name)
}

func TestStatusCmd_Table(t *testing.T) {
	h := newHarness(t)
	h.cp.bindings.EXPECT().Status(mock.Anything, domain.OwnerID("u1")).Return(&domain.ContainerView{
		Record:     *record(domain.RecordActive),
		ProbeError: "context deadline exceeded",
	}, nil).Once()

	out, err := h.run("status", "u1")

	require.NoError(t, err)
	assert.Contains(t, out, "Container box")
	assert.Contains(t, out, "probe failed: context deadline exceeded")
}

func TestListCmd(t *testing.T) {
	views := []domain.ContainerView{
		{Record: *record(domain.RecordActive), Live: &domain.LiveState{Status: domain.ContainerStatusRunning, Running: true}},
		{Record: domain.ContainerRecord{ID: "rec-2", Owner: "u2", Name: "gone", State: domain.RecordDestroyed}, Drifted: true},
	}

	t.Run("table", func(t *testing.T) {
		h := newHarness(t)
		h.cp.bindings.EXPECT().List(mock.Anything, domain.ListOptions{}).Return(views, nil).Once()

		out, err := h.run("list")

		require.NoError(t, err)
		assert.Contains(t, out, "OWNER")
		assert.Contains(t, out, "u1")
		assert.Contains(t, out, "running")
		assert.Contains(t, out, "u2: container was gone")
	})

	t.Run("yaml with destroyed", func(t *testing.T) {
		h := newHarness(t)
		h.cp.bindings.EXPECT().List(mock.Anything, domain.ListOptions{IncludeDestroyed: true}).Return(views, nil).Once()

		out, err := h.run("list", "--all", "--output", "yaml")

		require.NoError(t, err)
		assert.Contains(t, out, "owner: u1")
		assert.Contains(t, out, "drifted: true")
	})

	t.Run("empty", func(t *testing.T) {
		h := newHarness(t)
		h.cp.bindings.EXPECT().List(mock.Anything, domain.ListOptions{}).Return([]domain.ContainerView{}, nil).Once()

		out, err := h.run("list")

		require.NoError(t, err)
		assert.Contains(t, out, "No containers")
	})

	t.Run("unknown format", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("list", "-o", "xml")

		require.Error(t, err)
		assert.Zero(t, h.opened)
	})
}

func TestLogLevel(t *testing.T) {
	t.Run("local commands default to warn", func(t *testing.T) {
		h := newHarness(t)
		h.cp.bindings.EXPECT().List(mock.Anything, domain.ListOptions{}).Return([]domain.ContainerView{}, nil).Once()

		_, err := h.run("list")

		require.NoError(t, err)
		assert.Equal(t, "warn", h.lastCfg.Log.Level)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("serve", "--log-level", "debug")

		require.NoError(t, err)
		assert.Equal(t, "debug", h.lastCfg.Log.Level)
	})
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	out, err := newHarness(t).run("version")

	require.NoError(t, err)
	assert.Contains(t, out, "boxkeep 1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestFormatError(t *testing.T) {
	assert.Contains(t, FormatError(errors.New("boom")), "boom")
	assert.Contains(t, FormatError(domain.NewError(domain.KindNoContainer, "owner u1 has no container", nil)), "NoContainer: owner u1 has no container")
}
