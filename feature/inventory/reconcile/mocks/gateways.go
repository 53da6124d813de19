package mocks

import (
	"context"

	"inventory-sync/feature/inventory/models"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of reconcile.SourceGateway
type Source struct {
	mock.Mock
}

func (m *Source) FetchDevices(ctx context.Context) ([]models.SourceDevice, error) {
	args := m.Called(ctx)
	if devices, ok := args.Get(0).([]models.SourceDevice); ok {
		return devices, args.Error(1)
	}
	return nil, args.Error(1)
}

// Registry is a mock implementation of reconcile.RegistryGateway
type Registry struct {
	mock.Mock
}

func (m *Registry) FetchManufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]models.Manufacturer); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) FetchDeviceTypes(ctx context.Context) ([]models.DeviceType, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]models.DeviceType); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) FetchAssets(ctx context.Context) ([]models.Asset, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]models.Asset); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) CreateManufacturer(ctx context.Context, name, slug string) (*models.Manufacturer, error) {
	args := m.Called(ctx, name, slug)
	if record, ok := args.Get(0).(*models.Manufacturer); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) CreateDeviceType(ctx context.Context, payload models.DeviceTypePayload) (*models.DeviceType, error) {
	args := m.Called(ctx, payload)
	if record, ok := args.Get(0).(*models.DeviceType); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) CreateAsset(ctx context.Context, payload models.AssetPayload) (*models.Asset, error) {
	args := m.Called(ctx, payload)
	if record, ok := args.Get(0).(*models.Asset); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) UpdateAsset(ctx context.Context, id int64, payload models.AssetPayload) (*models.Asset, error) {
	args := m.Called(ctx, id, payload)
	if record, ok := args.Get(0).(*models.Asset); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}
