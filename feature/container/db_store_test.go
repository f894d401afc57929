package container

import (
	"context"
	"errors"
	"testing"

	"chest-sorter/core/database"
	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLiteStore(t *testing.T) *DBStore {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := NewDBStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestDBStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	potion := stack("minecraft:potion", 1, 1)
	potion.Metadata.PotionEffects = []reconcile.PotionEffect{{Effect: "speed", Amplifier: 1, Duration: 3600}}
	require.NoError(t, store.Save(ctx, document("chest-1", nil, potion, stack("minecraft:coal", 40, 64), nil)))

	doc, err := store.Load(ctx, "chest-1")
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Size)
	assert.Nil(t, doc.Slots[0])
	assert.Equal(t, reconcile.Canonicalize(potion), reconcile.Canonicalize(doc.Slots[1]))
	assert.Equal(t, 40, doc.Slots[2].Quantity)

	// Saving again replaces every slot row.
	require.NoError(t, store.Save(ctx, document("chest-1", stack("minecraft:coal", 40, 64), nil, nil, nil)))
	doc, err = store.Load(ctx, "chest-1")
	require.NoError(t, err)
	assert.Equal(t, 1, reconcile.Snapshot(doc.Slots).Occupied())

	var rows int64
	require.NoError(t, store.db.Model(&models.ContainerSlot{}).Where("container_id = ?", "chest-1").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"chest-1"}, ids)
}

func TestDBStore_SortsThroughEngine(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)
	require.NoError(t, store.Save(ctx, document("chest", stack("minecraft:apple", 3, 64), stack("minecraft:bread", 70, 64), nil, stack("minecraft:apple", 2, 64), nil)))

	svc := NewService(store, newSettings(reconcile.ModeAlpha, false, false), nil)
	report, err := svc.Sort(ctx, "chest", SortOptions{})
	require.NoError(t, err)
	require.True(t, report.Result.Success, report.Result.Reason)

	doc, err := store.Load(ctx, "chest")
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Slots[0].Quantity)
	assert.Equal(t, 64, doc.Slots[1].Quantity)
	assert.Equal(t, 6, doc.Slots[2].Quantity)
	assert.Nil(t, doc.Slots[3])
}

func TestDBStore_SlotOutsideSize(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)
	require.NoError(t, store.Save(ctx, document("chest", nil, nil)))
	require.NoError(t, store.db.Create(&models.ContainerSlot{ContainerID: "chest", Slot: 5, ItemType: "minecraft:stone", Amount: 1, MaxAmount: 64}).Error)

	_, err := store.Load(ctx, "chest")
	assert.ErrorContains(t, err, "outside size")
}

func TestDBStore_InvalidSize(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)
	require.NoError(t, store.db.Create(&models.ContainerRecord{ID: "bad", Size: -1}).Error)

	_, err := store.Load(ctx, "bad")
	assert.ErrorContains(t, err, "invalid size -1")
}

func TestDBStore_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `containers`").WillReturnRows(sqlmock.NewRows([]string{"id", "size"}))

	_, err := NewDBStore(db).Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `containers`").WillReturnError(errors.New("connection reset"))

	_, err := NewDBStore(db).Load(context.Background(), "chest")
	assert.ErrorContains(t, err, "connection reset")
}

func TestDBStore_SaveRollsBackTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `containers`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM `container_slots`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := NewDBStore(db).Save(context.Background(), document("chest", stack("minecraft:stone", 1, 64)))
	assert.ErrorContains(t, err, "lock wait timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}
