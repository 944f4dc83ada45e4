package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return db, mock
}

var catalogNow = time.Date(2026, time.May, 4, 9, 30, 0, 0, time.UTC)

func TestCatalogRepository_FindActiveOffers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	offerID := uuid.New()
	commerceID := uuid.New()
	lat, lng := 48.8566, 2.3522
	rows := sqlmock.NewRows([]string{
		"id", "commerce_id", "title", "description", "image_url", "latitude", "longitude",
		"boosted", "is_active", "start_date", "end_date", "like_count", "created_at",
	}).
		AddRow(offerID.String(), commerceID.String(), "50% off", "", "", lat, lng, true, true, nil, nil, 3, catalogNow).
		AddRow(uuid.New().String(), commerceID.String(), "Free dessert", "", "", nil, nil, false, true, nil, nil, 0, catalogNow)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "offers" WHERE is_active = $1 AND (start_date IS NULL OR start_date <= $2) AND (end_date IS NULL OR end_date >= $3) AND (title ILIKE $4 OR description ILIKE $5) ORDER BY boosted DESC,created_at DESC`,
	)).
		WithArgs(true, catalogNow, catalogNow, `%50\% off%`, `%50\% off%`).
		WillReturnRows(rows)

	offers, err := repo.FindActiveOffers(context.Background(), repository.CatalogQuery{Search: " 50% off ", Now: catalogNow})

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, offerID, offers[0].ID)
	assert.Equal(t, commerceID, offers[0].CommerceID)
	require.NotNil(t, offers[0].Location)
	assert.Equal(t, entity.NewCoordinate(lng, lat), *offers[0].Location)
	assert.Equal(t, 3, offers[0].LikeCount)
	assert.Nil(t, offers[1].Location)
}

func TestCatalogRepository_FindActiveEvents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "start_date", "is_active"}).
		AddRow(uuid.New().String(), "Jazz night", catalogNow.Add(time.Hour), true)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "events" WHERE is_active = $1 AND COALESCE(end_date, start_date) >= $2 ORDER BY boosted DESC,created_at DESC`,
	)).
		WithArgs(true, catalogNow).
		WillReturnRows(rows)

	events, err := repo.FindActiveEvents(context.Background(), repository.CatalogQuery{Now: catalogNow})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Jazz night", events[0].Title)
	assert.Equal(t, catalogNow.Add(time.Hour), events[0].StartDate)
}

func TestCatalogRepository_FindActiveCommerces_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "commerces" WHERE is_active = $1`)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindActiveCommerces(context.Background(), repository.CatalogQuery{Now: catalogNow})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCatalogRepository_FindCommercesByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	a, b := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "latitude", "longitude"}).
		AddRow(a.String(), "Bakery", 45.764, 4.8357).
		AddRow(b.String(), "Bookshop", nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "commerces" WHERE id IN ($1,$2)`)).
		WithArgs(a.String(), b.String()).
		WillReturnRows(rows)

	commerces, err := repo.FindCommercesByIDs(context.Background(), []uuid.UUID{a, b})

	require.NoError(t, err)
	require.Len(t, commerces, 2)
	assert.Equal(t, "Bakery", commerces[0].Name)
	assert.NotNil(t, commerces[0].Location)
	assert.Nil(t, commerces[1].Location)

	empty, err := repo.FindCommercesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEngagementRepository_ListEntityIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	userID := uuid.New()
	liked := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "event_id" FROM "user_like_events" WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(liked.String()))

	ids, err := repo.ListEntityIDs(context.Background(), entity.EngagementLike, userID, entity.EntityTypeEvent)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{liked}, ids)
}

func TestEngagementRepository_Insert(t *testing.T) {
	record := entity.EngagementRecord{
		UserID:     uuid.New(),
		EntityType: entity.EntityTypeCommerce,
		EntityID:   uuid.New(),
		CreatedAt:  catalogNow,
	}
	insert := regexp.QuoteMeta(`INSERT INTO user_follow_commerces (user_id, commerce_id, created_at) VALUES ($1, $2, $3)`)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(insert).
			WithArgs(record.UserID.String(), record.EntityID.String(), catalogNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewEngagementRepository(db).Insert(context.Background(), entity.EngagementFollow, record))
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(insert).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := NewEngagementRepository(db).Insert(context.Background(), entity.EngagementFollow, record)
		require.ErrorIs(t, err, repository.ErrDuplicateEngagement)
	})

	t.Run("unsupported pair never reaches the database", func(t *testing.T) {
		db, _ := newMockDB(t)
		likeCommerce := record

		err := NewEngagementRepository(db).Insert(context.Background(), entity.EngagementLike, likeCommerce)
		require.ErrorIs(t, err, repository.ErrUnsupportedEngagement)
	})
}

func TestEngagementRepository_Delete(t *testing.T) {
	record := entity.EngagementRecord{UserID: uuid.New(), EntityType: entity.EntityTypeOffer, EntityID: uuid.New()}
	del := regexp.QuoteMeta(`DELETE FROM user_favorite_offers WHERE user_id = $1 AND offer_id = $2`)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(del).
			WithArgs(record.UserID.String(), record.EntityID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewEngagementRepository(db).Delete(context.Background(), entity.EngagementFavorite, record))
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(del).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewEngagementRepository(db).Delete(context.Background(), entity.EngagementFavorite, record)
		require.ErrorIs(t, err, repository.ErrEngagementNotFound)
	})
}

func TestCounterRepository(t *testing.T) {
	id := uuid.New()

	t.Run("increment", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "offers" SET "like_count"=like_count + $1 WHERE id = $2`)).
			WithArgs(1, id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewCounterRepository(db).IncrementLikeCount(context.Background(), entity.EntityTypeOffer, id))
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "events" SET "like_count"=GREATEST(like_count - $1, 0) WHERE id = $2`)).
			WithArgs(1, id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewCounterRepository(db).DecrementLikeCount(context.Background(), entity.EntityTypeEvent, id))
	})

	t.Run("unknown entity", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "offers"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewCounterRepository(db).IncrementLikeCount(context.Background(), entity.EntityTypeOffer, id)
		require.ErrorIs(t, err, repository.ErrEntityNotFound)
	})

	t.Run("commerces have no counter", func(t *testing.T) {
		db, _ := newMockDB(t)

		err := NewCounterRepository(db).IncrementLikeCount(context.Background(), entity.EntityTypeCommerce, id)
		require.ErrorIs(t, err, repository.ErrUnsupportedEngagement)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_off\\`, escapeLike(`100%_off\`))
}
