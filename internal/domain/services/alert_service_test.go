package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

func TestCreateAlertDefaultsToInfo(t *testing.T) {
	f := newScopeFixture(t)
	service := NewAlertService(f.db, f.scope)

	alert, err := service.CreateAlert(f.userA, &AlertRequest{
		DeviceID: f.deviceA.ID,
		Message:  "revisión pendiente",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AlertTypeInfo, alert.AlertType)
	assert.False(t, alert.IsResolved)
	require.NotNil(t, alert.OrganizationID)
	assert.Equal(t, f.orgA.ID, *alert.OrganizationID)
}

func TestCreateAlertRejectsInvalidType(t *testing.T) {
	f := newScopeFixture(t)
	service := NewAlertService(f.db, f.scope)

	_, err := service.CreateAlert(f.userA, &AlertRequest{
		DeviceID:  f.deviceA.ID,
		AlertType: "catastrophic",
		Message:   "tipo inventado",
	})
	require.Error(t, err)
}

func TestCreateAlertRejectsOrganizationMismatch(t *testing.T) {
	f := newScopeFixture(t)
	service := NewAlertService(f.db, f.scope)

	_, err := service.CreateAlert(f.root, &AlertRequest{
		DeviceID:       f.deviceA.ID,
		Message:        "organización cruzada",
		OrganizationID: &f.orgB.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no coincide")
}

func TestResolveAlertSetsTimestamp(t *testing.T) {
	f := newScopeFixture(t)
	service := NewAlertService(f.db, f.scope)

	var alert models.Alert
	require.NoError(t, f.db.Where("device_id = ?", f.deviceA.ID).First(&alert).Error)

	resolved, err := service.ResolveAlert(f.userA, alert.ID)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedAt)

	// Resolver dos veces no cambia la hora original
	first := *resolved.ResolvedAt
	again, err := service.ResolveAlert(f.userA, alert.ID)
	require.NoError(t, err)
	require.NotNil(t, again.ResolvedAt)
	assert.Equal(t, first.Unix(), again.ResolvedAt.Unix())
}

func TestResolveAlertOutOfScope(t *testing.T) {
	f := newScopeFixture(t)
	service := NewAlertService(f.db, f.scope)

	var foreign models.Alert
	require.NoError(t, f.db.Where("device_id = ?", f.deviceB.ID).First(&foreign).Error)

	_, err := service.ResolveAlert(f.userA, foreign.ID)
	require.Error(t, err)
}

func TestGetAlertsStatusFilter(t *testing.T) {
	f := newScopeFixture(t)
	service := NewAlertService(f.db, f.scope)

	var alert models.Alert
	require.NoError(t, f.db.Where("device_id = ?", f.deviceA.ID).First(&alert).Error)
	_, err := service.ResolveAlert(f.userA, alert.ID)
	require.NoError(t, err)

	another, err := service.CreateAlert(f.userA, &AlertRequest{
		DeviceID:  f.deviceA.ID,
		AlertType: string(models.AlertTypeCritical),
		Message:   "sin señal",
	})
	require.NoError(t, err)

	active, total, err := service.GetAlerts(f.userA, &AlertListQuery{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, another.ID, active[0].ID)

	resolved, total, err := service.GetAlerts(f.userA, &AlertListQuery{Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, resolved, 1)
	assert.Equal(t, alert.ID, resolved[0].ID)

	_, total, err = service.GetAlerts(f.userA, &AlertListQuery{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
