package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// scopeFixture arma dos organizaciones con datos cruzados para probar
// el aislamiento de tenants
type scopeFixture struct {
	db    *gorm.DB
	scope InterfaceScopeService

	orgA *models.Organization
	orgB *models.Organization

	root  *models.User // superusuario
	userA *models.User // pertenece a la organización A
	userB *models.User // pertenece a la organización B
	loner *models.User // sin organización, con dispositivo propio
	deviceA      *models.Device // de la organización A
	deviceB      *models.Device // de la organización B
	orphanDevice *models.Device // del usuario sin organización
}

func newScopeFixture(t *testing.T) *scopeFixture {
	t.Helper()

	db := newTestDB(t)
	f := &scopeFixture{db: db, scope: NewScopeService(db)}

	f.orgA = createOrganization(t, db, "Organización A")
	f.orgB = createOrganization(t, db, "Organización B")

	f.root = createUser(t, db, "root", nil, true)
	f.userA = createUser(t, db, "usuario_a", &f.orgA.ID, false)
	f.userB = createUser(t, db, "usuario_b", &f.orgB.ID, false)
	f.loner = createUser(t, db, "solitario", nil, false)

	meter := createDeviceType(t, db, "Medidor de Energía")

	f.deviceA = createDevice(t, db, "Medidor A", meter.ID, f.userA.ID, &f.orgA.ID)
	f.deviceB = createDevice(t, db, "Medidor B", meter.ID, f.userB.ID, &f.orgB.ID)
	f.orphanDevice = createDevice(t, db, "Medidor Propio", meter.ID, f.loner.ID, nil)

	for _, device := range []*models.Device{f.deviceA, f.deviceB, f.orphanDevice} {
		measurement := models.Measurement{
			DeviceID:       device.ID,
			OrganizationID: device.OrganizationID,
			Value:          100,
			Unit:           "kWh",
			Timestamp:      time.Now(),
		}
		require.NoError(t, db.Create(&measurement).Error)

		alert := models.Alert{
			DeviceID:       device.ID,
			OrganizationID: device.OrganizationID,
			AlertType:      models.AlertTypeWarning,
			Message:        "consumo alto en " + device.Name,
		}
		require.NoError(t, db.Create(&alert).Error)
	}

	require.NoError(t, db.Create(&models.Zone{Name: "Zona A", OrganizationID: f.orgA.ID}).Error)
	require.NoError(t, db.Create(&models.Zone{Name: "Zona B", OrganizationID: f.orgB.ID}).Error)

	require.NoError(t, db.Create(&models.Category{Name: "Solar A", OrganizationID: &f.orgA.ID}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Solar B", OrganizationID: &f.orgB.ID}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "General"}).Error)

	return f
}

func deviceNames(t *testing.T, q *gorm.DB) []string {
	t.Helper()
	var devices []models.Device
	require.NoError(t, q.Order("devices.name").Find(&devices).Error)
	names := make([]string, 0, len(devices))
	for _, d := range devices {
		names = append(names, d.Name)
	}
	return names
}

func TestScopedDevicesSuperuser(t *testing.T) {
	f := newScopeFixture(t)

	names := deviceNames(t, f.scope.ScopedDevices(f.root))
	assert.Equal(t, []string{"Medidor A", "Medidor B", "Medidor Propio"}, names)
}

func TestScopedDevicesOrganizationUser(t *testing.T) {
	f := newScopeFixture(t)

	names := deviceNames(t, f.scope.ScopedDevices(f.userA))
	assert.Equal(t, []string{"Medidor A"}, names)
}

func TestScopedDevicesOwnerWithoutOrganization(t *testing.T) {
	f := newScopeFixture(t)

	names := deviceNames(t, f.scope.ScopedDevices(f.loner))
	assert.Equal(t, []string{"Medidor Propio"}, names)
}

// Un dispositivo sin organización sigue visible para su propietario
// directo aunque el propietario pertenezca a una organización
func TestScopedDevicesOwnedDeviceWithoutOrganization(t *testing.T) {
	f := newScopeFixture(t)

	meter := createDeviceType(t, f.db, "Sensor")
	createDevice(t, f.db, "Sensor Personal", meter.ID, f.userA.ID, nil)

	names := deviceNames(t, f.scope.ScopedDevices(f.userA))
	assert.Equal(t, []string{"Medidor A", "Sensor Personal"}, names)
}

func TestScopedMeasurementsIsolation(t *testing.T) {
	f := newScopeFixture(t)

	var all []models.Measurement
	require.NoError(t, f.scope.ScopedMeasurements(f.root).Find(&all).Error)
	assert.Len(t, all, 3)

	var orgOnly []models.Measurement
	require.NoError(t, f.scope.ScopedMeasurements(f.userA).Find(&orgOnly).Error)
	require.Len(t, orgOnly, 1)
	assert.Equal(t, f.deviceA.ID, orgOnly[0].DeviceID)

	var owned []models.Measurement
	require.NoError(t, f.scope.ScopedMeasurements(f.loner).Find(&owned).Error)
	require.Len(t, owned, 1)
	assert.Equal(t, f.orphanDevice.ID, owned[0].DeviceID)
}

func TestScopedAlertsIsolation(t *testing.T) {
	f := newScopeFixture(t)

	var all []models.Alert
	require.NoError(t, f.scope.ScopedAlerts(f.root).Find(&all).Error)
	assert.Len(t, all, 3)

	var orgOnly []models.Alert
	require.NoError(t, f.scope.ScopedAlerts(f.userA).Find(&orgOnly).Error)
	require.Len(t, orgOnly, 1)
	assert.Equal(t, f.deviceA.ID, orgOnly[0].DeviceID)
}

func TestScopedZones(t *testing.T) {
	f := newScopeFixture(t)

	var all []models.Zone
	require.NoError(t, f.scope.ScopedZones(f.root).Find(&all).Error)
	assert.Len(t, all, 2)

	var orgZones []models.Zone
	require.NoError(t, f.scope.ScopedZones(f.userA).Find(&orgZones).Error)
	require.Len(t, orgZones, 1)
	assert.Equal(t, "Zona A", orgZones[0].Name)

	// Sin organización no hay zonas visibles
	var none []models.Zone
	require.NoError(t, f.scope.ScopedZones(f.loner).Find(&none).Error)
	assert.Empty(t, none)
}

func TestScopedCategoriesIncludeGlobal(t *testing.T) {
	f := newScopeFixture(t)

	var orgCategories []models.Category
	require.NoError(t, f.scope.ScopedCategories(f.userA).Order("name").Find(&orgCategories).Error)
	require.Len(t, orgCategories, 2)
	assert.Equal(t, "General", orgCategories[0].Name)
	assert.Equal(t, "Solar A", orgCategories[1].Name)

	// Sin organización solo se ven las globales
	var globalOnly []models.Category
	require.NoError(t, f.scope.ScopedCategories(f.loner).Find(&globalOnly).Error)
	require.Len(t, globalOnly, 1)
	assert.Equal(t, "General", globalOnly[0].Name)
}
