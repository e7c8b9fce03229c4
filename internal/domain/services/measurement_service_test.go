package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

func TestCreateMeasurementInheritsDeviceOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	measurement, err := service.CreateMeasurement(f.userA, &MeasurementRequest{
		DeviceID: f.deviceA.ID,
		Value:    123.5,
		Unit:     "kWh",
	})
	require.NoError(t, err)
	require.NotNil(t, measurement.OrganizationID)
	assert.Equal(t, f.orgA.ID, *measurement.OrganizationID)
	assert.False(t, measurement.Timestamp.IsZero())
}

func TestCreateMeasurementRejectsNonPositiveValue(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	_, err := service.CreateMeasurement(f.userA, &MeasurementRequest{
		DeviceID: f.deviceA.ID,
		Value:    0,
		Unit:     "kWh",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mayor que cero")

	_, err = service.CreateMeasurement(f.userA, &MeasurementRequest{
		DeviceID: f.deviceA.ID,
		Value:    -4,
		Unit:     "kWh",
	})
	require.Error(t, err)
}

// La organización explícita debe coincidir con la del dispositivo
func TestCreateMeasurementRejectsOrganizationMismatch(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	_, err := service.CreateMeasurement(f.root, &MeasurementRequest{
		DeviceID:       f.deviceA.ID,
		Value:          10,
		Unit:           "kWh",
		OrganizationID: &f.orgB.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no coincide")

	// Un dispositivo sin organización tampoco acepta una explícita
	_, err = service.CreateMeasurement(f.root, &MeasurementRequest{
		DeviceID:       f.orphanDevice.ID,
		Value:          10,
		Unit:           "kWh",
		OrganizationID: &f.orgA.ID,
	})
	require.Error(t, err)
}

func TestCreateMeasurementOnInvisibleDevice(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	// El dispositivo de la organización B no existe para un usuario de la A
	_, err := service.CreateMeasurement(f.userA, &MeasurementRequest{
		DeviceID: f.deviceB.ID,
		Value:    10,
		Unit:     "kWh",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no existe")
}

func TestGetMeasurementsDateRangeFilter(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	old := models.Measurement{
		DeviceID:       f.deviceA.ID,
		OrganizationID: &f.orgA.ID,
		Value:          50,
		Unit:           "kWh",
		Timestamp:      time.Date(2020, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.db.Create(&old).Error)

	measurements, total, err := service.GetMeasurements(f.userA, &MeasurementListQuery{
		DateFrom: "2020-01-01",
		DateTo:   "2020-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, measurements, 1)
	assert.Equal(t, old.ID, measurements[0].ID)
}

func TestGetMeasurementsInvalidSortFallsBack(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	// Un orden fuera de la lista permitida no debe romper la consulta
	_, total, err := service.GetMeasurements(f.userA, &MeasurementListQuery{
		ListQuery: models.ListQuery{Sort: "password; DROP TABLE users"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpdateMeasurementRevalidates(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	measurement, err := service.CreateMeasurement(f.userA, &MeasurementRequest{
		DeviceID: f.deviceA.ID,
		Value:    20,
		Unit:     "kWh",
	})
	require.NoError(t, err)

	_, err = service.UpdateMeasurement(f.userA, measurement.ID, &MeasurementRequest{
		DeviceID: f.deviceA.ID,
		Value:    -1,
		Unit:     "kWh",
	})
	require.Error(t, err)

	updated, err := service.UpdateMeasurement(f.userA, measurement.ID, &MeasurementRequest{
		DeviceID: f.deviceA.ID,
		Value:    35.5,
		Unit:     "kWh",
	})
	require.NoError(t, err)
	assert.Equal(t, 35.5, updated.Value)
}

func TestDeleteMeasurementOutOfScope(t *testing.T) {
	f := newScopeFixture(t)
	service := NewMeasurementService(f.db, f.scope)

	var foreign models.Measurement
	require.NoError(t, f.db.Where("device_id = ?", f.deviceB.ID).First(&foreign).Error)

	err := service.DeleteMeasurement(f.userA, foreign.ID)
	require.Error(t, err)

	// La medición sigue existiendo
	var count int64
	require.NoError(t, f.db.Model(&models.Measurement{}).Where("id = ?", foreign.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
