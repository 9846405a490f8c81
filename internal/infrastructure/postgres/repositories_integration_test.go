//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
	"github.com/rvaldez/repairshop-pro/internal/infrastructure/postgres"
	"github.com/rvaldez/repairshop-pro/pkg/config"
)

var pool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("repairshop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		panic("start postgres container: " + err.Error())
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic("connection string: " + err.Error())
	}

	pool, err = postgres.NewPool(ctx, config.DBConfig{DatabaseURL: connStr})
	if err != nil {
		panic("connect: " + err.Error())
	}

	schema, err := os.ReadFile("../../../migrations/001_init.sql")
	if err != nil {
		panic("read schema: " + err.Error())
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		panic("apply schema: " + err.Error())
	}

	code := m.Run()

	pool.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seedCustomer(t *testing.T) *entity.Customer {
	t.Helper()
	repo := postgres.NewCustomerRepository(pool)
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      "Integration Customer",
		Email:     uuid.New().String() + "@example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(customer))
	return customer
}

func seedOrder(t *testing.T, customerID string) *entity.Order {
	t.Helper()
	repo := postgres.NewOrderRepository(pool)
	order := &entity.Order{
		ID:                uuid.New().String(),
		RepairOrderNumber: "RO-" + uuid.New().String(),
		CustomerID:        customerID,
		Status:            entity.StatusDefault,
		TaxState:          "CA",
		Discount:          decimal.Zero,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, repo.Create(order))
	return order
}

func TestOrderRepo_CreateGetAttachesCustomer(t *testing.T) {
	customer := seedCustomer(t)
	order := seedOrder(t, customer.ID)

	repo := postgres.NewOrderRepository(pool)
	got, err := repo.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.RepairOrderNumber, got.RepairOrderNumber)
	assert.Equal(t, "CA", got.TaxState)
	require.NotNil(t, got.Customer)
	assert.Equal(t, customer.Name, got.Customer.Name)
}

func TestOrderRepo_DuplicateNumber(t *testing.T) {
	customer := seedCustomer(t)
	order := seedOrder(t, customer.ID)

	repo := postgres.NewOrderRepository(pool)
	dup := &entity.Order{
		ID:                uuid.New().String(),
		RepairOrderNumber: order.RepairOrderNumber,
		CustomerID:        customer.ID,
		Status:            entity.StatusDefault,
		Discount:          decimal.Zero,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	assert.ErrorIs(t, repo.Create(dup), domain.ErrDuplicate)
}

func TestCustomerRepo_DeleteRestrictedWhileReferenced(t *testing.T) {
	customer := seedCustomer(t)
	order := seedOrder(t, customer.ID)

	customers := postgres.NewCustomerRepository(pool)
	assert.ErrorIs(t, customers.Delete(customer.ID), domain.ErrInUse)

	orders := postgres.NewOrderRepository(pool)
	require.NoError(t, orders.Delete(order.ID))
	assert.NoError(t, customers.Delete(customer.ID))
}

func TestTxRunner_MutationAndHistoryCommitTogether(t *testing.T) {
	customer := seedCustomer(t)
	order := seedOrder(t, customer.ID)

	runner := postgres.NewTxRunner(pool)
	err := runner.Run(context.Background(), func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		line := &entity.OrderLine{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			Description: "Brake pads",
			Quantity:    2,
			Price:       decimal.RequireFromString("10"),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := lineRepo.Create(line); err != nil {
			return err
		}
		return historyRepo.Append(order.ID, "Line added at 2026-01-01 00:00:00")
	})
	require.NoError(t, err)

	history := postgres.NewOrderHistoryRepository(pool)
	entries, err := history.ListByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Line added at 2026-01-01 00:00:00", entries[0].Message)

	lines := postgres.NewOrderLineRepository(pool)
	got, err := lines.ListByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("10")))
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	customer := seedCustomer(t)
	order := seedOrder(t, customer.ID)

	runner := postgres.NewTxRunner(pool)
	sentinel := domain.ErrInvalidInput
	err := runner.Run(context.Background(), func(
		_ repository.OrderRepository,
		_ repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		if err := historyRepo.Append(order.ID, "must roll back"); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	history := postgres.NewOrderHistoryRepository(pool)
	entries, err := history.ListByOrder(order.ID)
	require.NoError(t, err)
	assert.Empty(t, entries, "append inside a failed transaction must not persist")
}

func TestPartRepo_DeleteClearsLineReference(t *testing.T) {
	customer := seedCustomer(t)
	order := seedOrder(t, customer.ID)

	parts := postgres.NewPartRepository(pool)
	part := &entity.Part{
		ID:        uuid.New().String(),
		Name:      "Oil filter",
		Price:     decimal.RequireFromString("7.50"),
		Stock:     3,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, parts.Create(part))

	lines := postgres.NewOrderLineRepository(pool)
	line := &entity.OrderLine{
		ID:          uuid.New().String(),
		OrderID:     order.ID,
		PartID:      part.ID,
		Description: "Replace oil filter",
		Quantity:    1,
		Price:       part.Price,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, lines.Create(line))

	require.NoError(t, parts.Delete(part.ID))

	got, err := lines.GetByIDAndOrder(line.ID, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.PartID, "part reference must be cleared, line kept")
	assert.True(t, got.Price.Equal(part.Price), "snapshot price survives part deletion")
}
