package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/boundaries/out/mocks"
	"github.com/bnema/boxkeep/internal/domain"
)

func TestService_Check_AllHealthy(t *testing.T) {
	store := mocks.NewMockBindingStore(t)
	runtime := mocks.NewMockContainerRuntime(t)

	runtime.EXPECT().Ping(mock.Anything).Return(nil).Once()
	runtime.EXPECT().Version(mock.Anything).Return("27.5.1", nil).Once()
	store.EXPECT().FindActive(mock.Anything, domain.OwnerID("")).Return(nil, nil).Once()

	report := NewService(store, runtime).Check(context.Background())

	assert.Equal(t, domain.HealthOK, report.Status)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, "runtime", report.Checks[0].Name)
	assert.Equal(t, "docker 27.5.1", report.Checks[0].Detail)
	assert.True(t, report.Checks[1].OK)
}

func TestService_Check_RuntimeDown(t *testing.T) {
	store := mocks.NewMockBindingStore(t)
	runtime := mocks.NewMockContainerRuntime(t)

	runtime.EXPECT().Ping(mock.Anything).Return(errors.New("cannot connect to the docker daemon")).Once()
	store.EXPECT().FindActive(mock.Anything, domain.OwnerID("")).Return(nil, nil).Once()

	report := NewService(store, runtime).Check(context.Background())

	assert.Equal(t, domain.HealthDegraded, report.Status)
	assert.False(t, report.Checks[0].OK)
	assert.Contains(t, report.Checks[0].Detail, "docker daemon")
	assert.True(t, report.Checks[1].OK)
}
