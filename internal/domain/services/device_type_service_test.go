package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeviceTypeRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	service := NewDeviceTypeService(db)

	_, err := service.CreateDeviceType(&DeviceTypeRequest{Name: "Panel Solar"})
	require.NoError(t, err)

	_, err = service.CreateDeviceType(&DeviceTypeRequest{Name: "Panel Solar"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe")
}

func TestDeleteDeviceTypeWithDevices(t *testing.T) {
	db := newTestDB(t)
	service := NewDeviceTypeService(db)

	deviceType, err := service.CreateDeviceType(&DeviceTypeRequest{Name: "Actuador"})
	require.NoError(t, err)

	owner := createUser(t, db, "propietario", nil, false)
	createDevice(t, db, "Actuador 01", deviceType.ID, owner.ID, nil)

	err = service.DeleteDeviceType(deviceType.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dispositivos asociados")

	// Sin dispositivos sí se puede
	empty, err := service.CreateDeviceType(&DeviceTypeRequest{Name: "Obsoleto"})
	require.NoError(t, err)
	require.NoError(t, service.DeleteDeviceType(empty.ID))
	_, err = service.GetDeviceTypeByID(empty.ID)
	require.Error(t, err)
}
