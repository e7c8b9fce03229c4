package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

func TestCreateZoneUsesOwnOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := NewZoneService(f.db, f.scope)

	// Aunque pida otra organización, la zona queda en la suya
	zone, err := service.CreateZone(f.userA, &ZoneRequest{
		Name:           "Zona Nueva",
		OrganizationID: f.orgB.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.orgA.ID, zone.OrganizationID)
}

func TestCreateZoneSuperuserPicksOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := NewZoneService(f.db, f.scope)

	zone, err := service.CreateZone(f.root, &ZoneRequest{
		Name:           "Zona Delegada",
		OrganizationID: f.orgB.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.orgB.ID, zone.OrganizationID)
}

func TestCreateZoneRequiresOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := NewZoneService(f.db, f.scope)

	_, err := service.CreateZone(f.loner, &ZoneRequest{Name: "Sin Hogar"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "organización")
}

func TestUpdateZoneOutOfScope(t *testing.T) {
	f := newScopeFixture(t)
	service := NewZoneService(f.db, f.scope)

	var foreign models.Zone
	require.NoError(t, f.db.Where("name = ?", "Zona B").First(&foreign).Error)

	_, err := service.UpdateZone(f.userA, foreign.ID, &ZoneRequest{Name: "Robada"})
	require.Error(t, err)
}

func TestDeleteZoneClearsDevices(t *testing.T) {
	f := newScopeFixture(t)
	service := NewZoneService(f.db, f.scope)

	var zone models.Zone
	require.NoError(t, f.db.Where("name = ?", "Zona A").First(&zone).Error)
	require.NoError(t, f.db.Model(&models.Device{}).
		Where("id = ?", f.deviceA.ID).
		Update("zone_id", zone.ID).Error)

	require.NoError(t, service.DeleteZone(f.userA, zone.ID))

	var device models.Device
	require.NoError(t, f.db.First(&device, f.deviceA.ID).Error)
	assert.Nil(t, device.ZoneID)
}
