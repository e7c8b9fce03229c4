package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

func newDeviceService(f *scopeFixture, t *testing.T) InterfaceDeviceService {
	t.Helper()
	return NewDeviceService(f.db, testConfig(t), f.scope)
}

func TestCreateDeviceAssignsOwnerAndOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	device := &models.Device{
		Name:         "Medidor Nuevo",
		DeviceTypeID: meter.ID,
	}
	require.NoError(t, service.CreateDevice(f.userA, device))

	assert.Equal(t, f.userA.ID, device.OwnerID)
	require.NotNil(t, device.OrganizationID)
	assert.Equal(t, f.orgA.ID, *device.OrganizationID)
	assert.Equal(t, models.DeviceStatusActive, device.Status)
}

// La organización del cuerpo de la petición se descarta: nadie puede
// plantar un dispositivo dentro de una organización ajena
func TestCreateDeviceIgnoresRequestedOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	intruder := &models.Device{
		Name:           "Troyano",
		DeviceTypeID:   meter.ID,
		OrganizationID: &f.orgB.ID,
	}
	require.NoError(t, service.CreateDevice(f.loner, intruder))
	assert.Nil(t, intruder.OrganizationID)

	names := deviceNames(t, f.scope.ScopedDevices(f.userB))
	assert.NotContains(t, names, "Troyano")

	// Un usuario de la organización A tampoco puede elegir la B
	crossed := &models.Device{
		Name:           "Cruzado",
		DeviceTypeID:   meter.ID,
		OrganizationID: &f.orgB.ID,
	}
	require.NoError(t, service.CreateDevice(f.userA, crossed))
	require.NotNil(t, crossed.OrganizationID)
	assert.Equal(t, f.orgA.ID, *crossed.OrganizationID)
}

func TestCreateDeviceSuperuserPicksOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	device := &models.Device{
		Name:           "Delegado",
		DeviceTypeID:   meter.ID,
		OrganizationID: &f.orgB.ID,
	}
	require.NoError(t, service.CreateDevice(f.root, device))
	require.NotNil(t, device.OrganizationID)
	assert.Equal(t, f.orgB.ID, *device.OrganizationID)
}

func TestCreateDeviceRejectsForeignZoneAndCategory(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	var zoneB models.Zone
	require.NoError(t, f.db.Where("name = ?", "Zona B").First(&zoneB).Error)

	err := service.CreateDevice(f.userA, &models.Device{
		Name:         "Zona Ajena",
		DeviceTypeID: meter.ID,
		ZoneID:       &zoneB.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zona")

	var categoryB models.Category
	require.NoError(t, f.db.Where("name = ?", "Solar B").First(&categoryB).Error)

	err = service.CreateDevice(f.userA, &models.Device{
		Name:         "Categoría Ajena",
		DeviceTypeID: meter.ID,
		CategoryID:   &categoryB.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoría")

	// Las globales sí se aceptan
	var global models.Category
	require.NoError(t, f.db.Where("name = ?", "General").First(&global).Error)
	require.NoError(t, service.CreateDevice(f.userA, &models.Device{
		Name:         "Con Global",
		DeviceTypeID: meter.ID,
		CategoryID:   &global.ID,
	}))
}

func TestCreateDeviceRejectsUnknownType(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	device := &models.Device{Name: "Sin Tipo", DeviceTypeID: 9999}
	err := service.CreateDevice(f.userA, device)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de dispositivo")
}

func TestCreateDeviceRejectsInvalidStatus(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	device := &models.Device{
		Name:         "Estado Raro",
		DeviceTypeID: meter.ID,
		Status:       "exploded",
	}
	err := service.CreateDevice(f.userA, device)
	require.Error(t, err)
}

func TestGetDevicesPaginationDefaults(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	for i := 0; i < 12; i++ {
		createDevice(t, f.db, fmt.Sprintf("Extra %02d", i), meter.ID, f.userA.ID, &f.orgA.ID)
	}

	// Tamaño fuera de la lista permitida: vuelve al valor por defecto
	devices, total, err := service.GetDevices(f.userA, &DeviceListQuery{
		ListQuery: models.ListQuery{Page: 1, PageSize: 37},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Len(t, devices, 10)

	devices, _, err = service.GetDevices(f.userA, &DeviceListQuery{
		ListQuery: models.ListQuery{Page: 2, PageSize: 10},
	})
	require.NoError(t, err)
	assert.Len(t, devices, 3)
}

func TestGetDevicesSearchAndFilters(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	devices, total, err := service.GetDevices(f.userA, &DeviceListQuery{
		ListQuery: models.ListQuery{Search: "Medidor A"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, devices, 1)
	assert.Equal(t, "Medidor A", devices[0].Name)

	// La búsqueda no amplía el alcance: el medidor B no aparece
	_, total, err = service.GetDevices(f.userA, &DeviceListQuery{
		ListQuery: models.ListQuery{Search: "Medidor B"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestGetDevicesSortAllowList(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)
	createDevice(t, f.db, "Aparato", meter.ID, f.userA.ID, &f.orgA.ID)

	devices, _, err := service.GetDevices(f.userA, &DeviceListQuery{
		ListQuery: models.ListQuery{Sort: "name"},
	})
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "Aparato", devices[0].Name)

	devices, _, err = service.GetDevices(f.userA, &DeviceListQuery{
		ListQuery: models.ListQuery{Sort: "-name"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Medidor A", devices[0].Name)
}

// El mapa de cambios no puede mover un dispositivo a otro tenant:
// los campos de pertenencia se descartan y las referencias cruzadas
// se rechazan
func TestUpdateDeviceStripsMembershipFields(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	updated, err := service.UpdateDevice(f.loner, f.orphanDevice.ID, map[string]interface{}{
		"name":            "Infiltrado",
		"organization_id": float64(f.orgB.ID),
		"owner_id":        float64(f.userB.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "Infiltrado", updated.Name)
	assert.Nil(t, updated.OrganizationID)
	assert.Equal(t, f.loner.ID, updated.OwnerID)

	names := deviceNames(t, f.scope.ScopedDevices(f.userB))
	assert.NotContains(t, names, "Infiltrado")
}

func TestUpdateDeviceRejectsForeignReferences(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var zoneB models.Zone
	require.NoError(t, f.db.Where("name = ?", "Zona B").First(&zoneB).Error)

	_, err := service.UpdateDevice(f.userA, f.deviceA.ID, map[string]interface{}{
		"zone_id": float64(zoneB.ID),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zona")

	var categoryB models.Category
	require.NoError(t, f.db.Where("name = ?", "Solar B").First(&categoryB).Error)

	_, err = service.UpdateDevice(f.userA, f.deviceA.ID, map[string]interface{}{
		"category_id": float64(categoryB.ID),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoría")

	_, err = service.UpdateDevice(f.userA, f.deviceA.ID, map[string]interface{}{
		"device_type_id": float64(9999),
	})
	require.Error(t, err)

	// Las referencias de la propia organización sí pasan
	var zoneA models.Zone
	require.NoError(t, f.db.Where("name = ?", "Zona A").First(&zoneA).Error)
	updated, err := service.UpdateDevice(f.userA, f.deviceA.ID, map[string]interface{}{
		"zone_id": float64(zoneA.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ZoneID)
	assert.Equal(t, zoneA.ID, *updated.ZoneID)
}

// Dos usuarios sin organización no se ven los dispositivos entre sí
func TestDevicesOfUserWithoutOrganizationArePrivate(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	var meter models.DeviceType
	require.NoError(t, f.db.First(&meter).Error)

	require.NoError(t, service.CreateDevice(f.loner, &models.Device{
		Name:         "Panel A",
		DeviceTypeID: meter.ID,
	}))

	devices, total, err := service.GetDevices(f.loner, &DeviceListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total) // Medidor Propio + Panel A

	found := false
	for _, d := range devices {
		if d.Name == "Panel A" {
			found = true
		}
	}
	assert.True(t, found)

	stranger := createUser(t, f.db, "ajeno", nil, false)
	_, total, err = service.GetDevices(stranger, &DeviceListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestUpdateDeviceOutOfScope(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	_, err := service.UpdateDevice(f.userA, f.deviceB.ID, map[string]interface{}{
		"name": "robado",
	})
	require.Error(t, err)
}

// Al eliminar un dispositivo no deben quedar mediciones ni alertas
// huérfanas
func TestDeleteDeviceCascades(t *testing.T) {
	f := newScopeFixture(t)
	service := newDeviceService(f, t)

	require.NoError(t, service.DeleteDevice(f.userA, f.deviceA.ID))

	var measurements int64
	require.NoError(t, f.db.Model(&models.Measurement{}).Where("device_id = ?", f.deviceA.ID).Count(&measurements).Error)
	assert.Equal(t, int64(0), measurements)

	var alerts int64
	require.NoError(t, f.db.Model(&models.Alert{}).Where("device_id = ?", f.deviceA.ID).Count(&alerts).Error)
	assert.Equal(t, int64(0), alerts)

	_, err := service.GetDeviceByID(f.userA, f.deviceA.ID)
	require.Error(t, err)
}
