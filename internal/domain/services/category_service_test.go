package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

func TestCreateCategoryBelongsToOrganization(t *testing.T) {
	f := newScopeFixture(t)
	service := NewCategoryService(f.db, f.scope)

	category, err := service.CreateCategory(f.userA, &CategoryRequest{Name: "Biomasa"})
	require.NoError(t, err)
	require.NotNil(t, category.OrganizationID)
	assert.Equal(t, f.orgA.ID, *category.OrganizationID)
}

func TestCreateGlobalCategoryRequiresSuperuser(t *testing.T) {
	f := newScopeFixture(t)
	service := NewCategoryService(f.db, f.scope)

	_, err := service.CreateCategory(f.userA, &CategoryRequest{Name: "Intento", Global: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "superusuario")

	category, err := service.CreateCategory(f.root, &CategoryRequest{Name: "Universal", Global: true})
	require.NoError(t, err)
	assert.Nil(t, category.OrganizationID)
}

func TestUpdateGlobalCategoryRequiresSuperuser(t *testing.T) {
	f := newScopeFixture(t)
	service := NewCategoryService(f.db, f.scope)

	var global models.Category
	require.NoError(t, f.db.Where("name = ?", "General").First(&global).Error)

	_, err := service.UpdateCategory(f.userA, global.ID, &CategoryRequest{Name: "Mía Ahora"})
	require.Error(t, err)

	updated, err := service.UpdateCategory(f.root, global.ID, &CategoryRequest{Name: "General v2"})
	require.NoError(t, err)
	assert.Equal(t, "General v2", updated.Name)
}

func TestDeleteCategoryClearsDevices(t *testing.T) {
	f := newScopeFixture(t)
	service := NewCategoryService(f.db, f.scope)

	var category models.Category
	require.NoError(t, f.db.Where("name = ?", "Solar A").First(&category).Error)
	require.NoError(t, f.db.Model(&models.Device{}).
		Where("id = ?", f.deviceA.ID).
		Update("category_id", category.ID).Error)

	require.NoError(t, service.DeleteCategory(f.userA, category.ID))

	var device models.Device
	require.NoError(t, f.db.First(&device, f.deviceA.ID).Error)
	assert.Nil(t, device.CategoryID)
}

func TestGetCategoryOutOfScope(t *testing.T) {
	f := newScopeFixture(t)
	service := NewCategoryService(f.db, f.scope)

	var foreign models.Category
	require.NoError(t, f.db.Where("name = ?", "Solar B").First(&foreign).Error)

	_, err := service.GetCategoryByID(f.userA, foreign.ID)
	require.Error(t, err)
}
