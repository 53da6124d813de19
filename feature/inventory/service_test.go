package inventory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"inventory-sync/feature/inventory"
	"inventory-sync/feature/inventory/models"
	"inventory-sync/feature/inventory/reconcile/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func emptySnapshot(source *mocks.Source, registry *mocks.Registry) {
	registry.On("FetchManufacturers", mock.Anything).Return([]models.Manufacturer{}, nil)
	registry.On("FetchDeviceTypes", mock.Anything).Return([]models.DeviceType{}, nil)
	registry.On("FetchAssets", mock.Anything).Return([]models.Asset{}, nil)
	source.On("FetchDevices", mock.Anything).Return([]models.SourceDevice{}, nil)
}

func TestService_RunCycle_StoresLastReport(t *testing.T) {
	source := new(mocks.Source)
	registry := new(mocks.Registry)
	emptySnapshot(source, registry)

	service := inventory.NewService(source, registry, zap.NewNop())

	status := service.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastReport)

	report, err := service.RunCycle(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report)

	status = service.Status()
	assert.False(t, status.Running)
	assert.Empty(t, status.LastError)
	require.NotNil(t, status.LastReport)
	assert.Equal(t, 0, status.LastReport.DevicesFetched)
	assert.WithinDuration(t, time.Now(), status.LastRun, time.Minute)
}

func TestService_RunCycle_StoresLastError(t *testing.T) {
	source := new(mocks.Source)
	registry := new(mocks.Registry)
	registry.On("FetchManufacturers", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	service := inventory.NewService(source, registry, zap.NewNop())

	_, err := service.RunCycle(context.Background())
	require.Error(t, err)

	status := service.Status()
	assert.Contains(t, status.LastError, "connection refused")
	assert.Nil(t, status.LastReport)
}

func TestService_RunCycle_RejectsOverlappingCycles(t *testing.T) {
	source := new(mocks.Source)
	registry := new(mocks.Registry)

	started := make(chan struct{})
	release := make(chan struct{})

	registry.On("FetchManufacturers", mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]models.Manufacturer{}, nil)
	registry.On("FetchDeviceTypes", mock.Anything).Return([]models.DeviceType{}, nil)
	registry.On("FetchAssets", mock.Anything).Return([]models.Asset{}, nil)
	source.On("FetchDevices", mock.Anything).Return([]models.SourceDevice{}, nil)

	service := inventory.NewService(source, registry, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.RunCycle(context.Background())
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, service.Status().Running)

	_, err := service.RunCycle(context.Background())
	assert.ErrorIs(t, err, inventory.ErrCycleInProgress)

	close(release)
	wg.Wait()
	assert.False(t, service.Status().Running)
}
