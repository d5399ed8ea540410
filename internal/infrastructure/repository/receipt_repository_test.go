package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/okravets/kasa-api/internal/domain/entity"
	domainRepo "github.com/okravets/kasa-api/internal/domain/repository"
	"github.com/okravets/kasa-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Receipt{}, &entity.ReceiptItem{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, login string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     "Test User",
		Login:    login,
		Password: "hashed",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func testReceipt(userID uuid.UUID, total, paymentType string) *entity.Receipt {
	totalDec := decimal.RequireFromString(total)
	return &entity.Receipt{
		UserID:        userID,
		Total:         totalDec,
		Rest:          decimal.Zero,
		PaymentType:   paymentType,
		PaymentAmount: totalDec,
		Items: []entity.ReceiptItem{
			{
				Name:     "Product",
				Price:    totalDec,
				Quantity: decimal.NewFromInt(1),
				Total:    totalDec,
			},
		},
	}
}

func TestReceiptRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db)
	user := createTestUser(t, db, "cashier")
	ctx := context.Background()

	record := &entity.Receipt{
		UserID:        user.ID,
		Total:         decimal.RequireFromString("85.20"),
		Rest:          decimal.RequireFromString("14.80"),
		PaymentType:   "cash",
		PaymentAmount: decimal.RequireFromString("100"),
		Items: []entity.ReceiptItem{
			{
				Name:     "Сир",
				Price:    decimal.RequireFromString("240"),
				Quantity: decimal.RequireFromString("0.355"),
				Total:    decimal.RequireFromString("85.20"),
			},
		},
	}
	require.NoError(t, repo.Create(ctx, record))
	require.NotEqual(t, uuid.Nil, record.ID)

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Total.Equal(decimal.RequireFromString("85.20")))
	require.Equal(t, "cash", got.PaymentType)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Сир", got.Items[0].Name)
	require.True(t, got.Items[0].Quantity.Equal(decimal.RequireFromString("0.355")))
}

func TestReceiptRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db)

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestReceiptRepository_GetByIDForUser_OwnershipScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	ctx := context.Background()

	record := testReceipt(owner.ID, "10", "cash")
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByIDForUser(ctx, record.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Another user's lookup behaves like the receipt does not exist
	got, err = repo.GetByIDForUser(ctx, record.ID, other.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// But the unscoped lookup for the public view still finds it
	got, err = repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestReceiptRepository_List_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db)
	user := createTestUser(t, db, "cashier")
	stranger := createTestUser(t, db, "stranger")
	ctx := context.Background()

	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	jun := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	cheap := testReceipt(user.ID, "10", "cash")
	cheap.CreatedAt = jan
	require.NoError(t, repo.Create(ctx, cheap))

	pricey := testReceipt(user.ID, "500", "card")
	pricey.CreatedAt = jun
	require.NoError(t, repo.Create(ctx, pricey))

	foreign := testReceipt(stranger.ID, "10", "cash")
	require.NoError(t, repo.Create(ctx, foreign))

	params := func() *domainRepo.ReceiptFilterParams {
		return &domainRepo.ReceiptFilterParams{Pagination: pagination.DefaultPagination()}
	}

	// No filters: only the user's own receipts
	receipts, total, err := repo.List(ctx, user.ID, params())
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, receipts, 2)

	// Payment type
	p := params()
	p.PaymentType = "card"
	receipts, total, err = repo.List(ctx, user.ID, p)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.True(t, receipts[0].Total.Equal(decimal.RequireFromString("500")))

	// Total bounds
	minTotal := decimal.RequireFromString("100")
	p = params()
	p.MinTotal = &minTotal
	_, total, err = repo.List(ctx, user.ID, p)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	maxTotal := decimal.RequireFromString("100")
	p = params()
	p.MaxTotal = &maxTotal
	_, total, err = repo.List(ctx, user.ID, p)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	// Date range covering only the January receipt
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	p = params()
	p.DateFrom = &from
	p.DateTo = &to
	receipts, total, err = repo.List(ctx, user.ID, p)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.True(t, receipts[0].Total.Equal(decimal.RequireFromString("10")))
}

func TestReceiptRepository_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db)
	user := createTestUser(t, db, "cashier")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := testReceipt(user.ID, "10", "cash")
		record.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, record))
	}

	p := &domainRepo.ReceiptFilterParams{
		Pagination: &pagination.PaginationParams{Page: 2, PerPage: 2},
	}
	receipts, total, err := repo.List(ctx, user.ID, p)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, receipts, 2)

	// Newest first
	require.True(t, receipts[0].CreatedAt.After(receipts[1].CreatedAt))
}

func TestUserRepository_GetByLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := createTestUser(t, db, "boris")

	got, err := repo.GetByLogin(ctx, "boris")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)

	got, err = repo.GetByLogin(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, got)
}
