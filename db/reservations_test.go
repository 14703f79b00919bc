package db

import (
	"testing"
	"time"

	"yirestaurant/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Reservations {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// one connection, or the pool would hand out fresh empty in-memory DBs
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Reservation{}).Error)
	t.Cleanup(func() { db.Close() })
	return NewReservations(db)
}

func sample(name string) *models.Reservation {
	return &models.Reservation{
		Name:   name,
		Email:  "a@x.com",
		Phone:  "555",
		Date:   "2024-06-01",
		Time:   "19:00",
		Guests: 2,
		Lang:   "en",
	}
}

func TestCreateAndList(t *testing.T) {
	store := setupTestStore(t)

	first := sample("Alice")
	require.NoError(t, store.Create(first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := sample("Bob")
	require.NoError(t, store.Create(second))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// newest first, created_at non-decreasing across sequential creates
	assert.Equal(t, "Bob", list[0].Name)
	assert.Equal(t, "Alice", list[1].Name)
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))
}

func TestListTiesBrokenByID(t *testing.T) {
	store := setupTestStore(t)

	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, name := range []string{"One", "Two", "Three"} {
		r := sample(name)
		r.CreatedAt = stamp
		require.NoError(t, store.Create(r))
	}

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Three", list[0].Name)
	assert.Equal(t, "Two", list[1].Name)
	assert.Equal(t, "One", list[2].Name)
}

func TestGet(t *testing.T) {
	store := setupTestStore(t)

	r := sample("Alice")
	require.NoError(t, store.Create(r))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = store.Get(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateReplacesMutableFields(t *testing.T) {
	store := setupTestStore(t)

	r := sample("Alice")
	r.Message = "window seat"
	require.NoError(t, store.Create(r))

	fields := &models.Reservation{
		Name:   "Alicia",
		Email:  "alicia@x.com",
		Phone:  "556",
		Date:   "2024-07-01",
		Time:   "20:00",
		Guests: 4,
		Lang:   "de",
		// Message intentionally empty: full replace must clear it
	}
	require.NoError(t, store.Update(r.ID, fields))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "alicia@x.com", got.Email)
	assert.Equal(t, "556", got.Phone)
	assert.Equal(t, "2024-07-01", got.Date)
	assert.Equal(t, "20:00", got.Time)
	assert.Equal(t, 4, got.Guests)
	assert.Equal(t, "", got.Message)
	assert.Equal(t, "de", got.Lang)

	// id and created_at survive the edit
	assert.Equal(t, r.ID, got.ID)
	assert.WithinDuration(t, r.CreatedAt, got.CreatedAt, time.Second)
}

func TestUpdateMissing(t *testing.T) {
	store := setupTestStore(t)

	err := store.Update(999, sample("Ghost"))
	assert.ErrorIs(t, err, models.ErrNotFound)

	list, lerr := store.List()
	require.NoError(t, lerr)
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	store := setupTestStore(t)

	r := sample("Alice")
	require.NoError(t, store.Create(r))

	require.NoError(t, store.Delete(r.ID))

	_, err := store.Get(r.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	list, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteMissing(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Create(sample("Alice")))

	err := store.Delete(999)
	assert.ErrorIs(t, err, models.ErrNotFound)

	list, lerr := store.List()
	require.NoError(t, lerr)
	assert.Len(t, list, 1)
}
