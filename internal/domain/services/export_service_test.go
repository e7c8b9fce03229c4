package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportService(f *scopeFixture, t *testing.T) InterfaceExportService {
	t.Helper()
	devices := NewDeviceService(f.db, testConfig(t), f.scope)
	measurements := NewMeasurementService(f.db, f.scope)
	return NewExportService(devices, measurements)
}

func TestExportDevicesRespectsScope(t *testing.T) {
	f := newScopeFixture(t)
	service := newExportService(f, t)

	file, filename, err := service.ExportDevices(f.userA, &DeviceListQuery{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "dispositivos_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	rows, err := file.GetRows("Dispositivos")
	require.NoError(t, err)

	// Cabecera más un dispositivo: el de la otra organización no sale
	require.Len(t, rows, 2)
	assert.Equal(t, "Nombre", rows[0][1])
	assert.Equal(t, "Medidor A", rows[1][1])
	assert.Equal(t, "Activo", rows[1][4])
}

func TestExportMeasurementsWritesSummary(t *testing.T) {
	f := newScopeFixture(t)
	service := newExportService(f, t)

	measurements := NewMeasurementService(f.db, f.scope)
	for _, value := range []float64{200, 300} {
		_, err := measurements.CreateMeasurement(f.userA, &MeasurementRequest{
			DeviceID: f.deviceA.ID,
			Value:    value,
			Unit:     "kWh",
		})
		require.NoError(t, err)
	}

	file, filename, err := service.ExportMeasurements(f.userA, &MeasurementListQuery{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "mediciones_"))

	rows, err := file.GetRows("Mediciones")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Valor", rows[0][3])

	// La del medidor B no entra en el libro
	for _, row := range rows[1:] {
		assert.Equal(t, "Medidor A", row[1])
	}

	count, err := file.GetCellValue("Resumen", "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", count)

	total, err := file.GetCellValue("Resumen", "B4")
	require.NoError(t, err)
	assert.Equal(t, "600.00", total)

	average, err := file.GetCellValue("Resumen", "B5")
	require.NoError(t, err)
	assert.Equal(t, "200.00", average)

	max, err := file.GetCellValue("Resumen", "B6")
	require.NoError(t, err)
	assert.Equal(t, "300.00", max)

	min, err := file.GetCellValue("Resumen", "B7")
	require.NoError(t, err)
	assert.Equal(t, "100.00", min)
}

func TestExportMeasurementsEmptySet(t *testing.T) {
	f := newScopeFixture(t)
	service := newExportService(f, t)

	// Usuario sin organización ni dispositivos: libro sin filas de datos
	empty := createUser(t, f.db, "sin_datos", nil, false)
	file, _, err := service.ExportMeasurements(empty, &MeasurementListQuery{})
	require.NoError(t, err)

	rows, err := file.GetRows("Mediciones")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	count, err := file.GetCellValue("Resumen", "B3")
	require.NoError(t, err)
	assert.Equal(t, "0", count)
}
