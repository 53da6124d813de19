package inventory_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-sync/feature/inventory"
	"inventory-sync/feature/inventory/models"
	"inventory-sync/feature/inventory/reconcile/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(source *mocks.Source, registry *mocks.Registry) (*fiber.App, *inventory.Service) {
	service := inventory.NewService(source, registry, zap.NewNop())
	app := fiber.New()
	inventory.NewHandler(service, zap.NewNop()).RegisterRoutes(app)
	return app, service
}

func TestHandler_Status(t *testing.T) {
	app, _ := newTestApp(new(mocks.Source), new(mocks.Registry))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sync/status", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status inventory.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.False(t, status.Running)
	assert.Nil(t, status.LastReport)
}

func TestHandler_Run_ReturnsReport(t *testing.T) {
	source := new(mocks.Source)
	registry := new(mocks.Registry)

	registry.On("FetchManufacturers", mock.Anything).Return([]models.Manufacturer{}, nil)
	registry.On("FetchDeviceTypes", mock.Anything).Return([]models.DeviceType{}, nil)
	registry.On("FetchAssets", mock.Anything).Return([]models.Asset{}, nil)
	source.On("FetchDevices", mock.Anything).Return([]models.SourceDevice{
		{Serial: "", Name: "ghost"},
	}, nil)

	app, _ := newTestApp(source, registry)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync/run", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report models.CycleReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.DevicesFetched)
	assert.Equal(t, 1, report.DevicesSkipped)
}

func TestHandler_Run_ConnectivityFailure(t *testing.T) {
	source := new(mocks.Source)
	registry := new(mocks.Registry)
	registry.On("FetchManufacturers", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	app, _ := newTestApp(source, registry)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync/run", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "connection refused")
}
