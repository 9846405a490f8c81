package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/application/usecase"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/infrastructure/memory"
)

func newCustomerUC() *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(memory.NewCustomerRepository())
}

func TestCustomerCreate_RoundTrip(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(dto.CreateCustomerRequest{
		Name:    "Dana Smith",
		Email:   "dana@example.com",
		Phone:   "555-0100",
		Address: "12 Main St",
		Notes:   "prefers morning appointments",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dana Smith", got.Name)
	assert.Equal(t, "dana@example.com", got.Email)
	assert.Equal(t, "prefers morning appointments", got.Notes)
}

func TestCustomerCreate_Validation(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.Create(dto.CreateCustomerRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing name")

	_, err = uc.Create(dto.CreateCustomerRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing email")

	for _, bad := range []string{"not-an-email", "a@", "@b.com", "a b@c.com"} {
		_, err = uc.Create(dto.CreateCustomerRequest{Name: "X", Email: bad})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "email %q should be rejected", bad)
	}
}

func TestCustomerUpdate_PartialAndMissing(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Dana", Email: "dana@example.com"})
	require.NoError(t, err)

	phone := "555-0199"
	updated, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Dana", updated.Name, "untouched fields keep their value")

	badEmail := "nope"
	_, err = uc.Update(created.ID, dto.UpdateCustomerRequest{Email: &badEmail})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing, err := uc.Update("does-not-exist", dto.UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerDelete_Missing(t *testing.T) {
	uc := newCustomerUC()
	assert.ErrorIs(t, uc.Delete("does-not-exist"), domain.ErrNotFound)
}
