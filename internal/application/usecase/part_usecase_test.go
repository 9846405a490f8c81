package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/application/usecase"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/infrastructure/memory"
)

func newPartUC() *usecase.PartUseCase {
	return usecase.NewPartUseCase(memory.NewPartRepository())
}

func TestPartCreate_DefaultsToZero(t *testing.T) {
	uc := newPartUC()
	part, err := uc.Create(dto.CreatePartRequest{Name: "Brake pads"})
	require.NoError(t, err)
	assert.True(t, part.Price.IsZero())
	assert.Zero(t, part.Stock)
}

func TestPartCreate_NameRequired(t *testing.T) {
	uc := newPartUC()
	_, err := uc.Create(dto.CreatePartRequest{Price: decimal.RequireFromString("9.99")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartList_QueryFiltersByName(t *testing.T) {
	uc := newPartUC()
	for _, name := range []string{"Brake pads", "Brake fluid", "Oil filter"} {
		_, err := uc.Create(dto.CreatePartRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List("Brake", 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	all, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
}

func TestPartUpdate_Partial(t *testing.T) {
	uc := newPartUC()
	created, err := uc.Create(dto.CreatePartRequest{Name: "Oil filter", Stock: 4})
	require.NoError(t, err)

	price := decimal.RequireFromString("7.50")
	updated, err := uc.Update(created.ID, dto.UpdatePartRequest{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, 4, updated.Stock, "untouched fields keep their value")
}
