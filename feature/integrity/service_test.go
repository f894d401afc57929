package integrity

import (
	"context"
	"testing"

	"chest-sorter/core/database"
	"chest-sorter/core/reconcile"
	"chest-sorter/core/storage/mocks"
	"chest-sorter/feature/container"
	"chest-sorter/feature/container/models"
	"chest-sorter/feature/integrity/checks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
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

func emptyObjects() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil, nil)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyObjects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, checks.RequiredFolders, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"journal"})
		assert.NoError(t, err)
	})
}

func TestService_WithoutBackends(t *testing.T) {
	svc := NewService(nil, "", nil, nil, nil)

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorContains(t, err, "storage is not configured")
	assert.Error(t, svc.FixStructure(context.Background(), []string{"journal"}))

	_, err = svc.CheckServer()
	assert.Error(t, err)

	_, err = svc.CheckContents(context.Background())
	assert.ErrorContains(t, err, "no container store")
}

func TestService_Contents(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store := container.NewMemoryStore(1)
		require.NoError(t, store.Save(ctx, &models.ContainerDocument{ID: "chest", Slots: []*reconcile.ItemStack{
			{BaseType: "minecraft:pearl", Quantity: 17, MaxStackSize: 16},
		}}))

		report, err := NewService(nil, "", zap.NewNop(), nil, store).CheckContents(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Checked)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, checks.ProblemOverstacked, report.Issues[0].Problem)
	})

	t.Run("Database", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		store := container.NewDBStore(db)
		require.NoError(t, store.Migrate())
		require.NoError(t, store.Save(ctx, &models.ContainerDocument{ID: "chest", Slots: []*reconcile.ItemStack{nil}}))
		require.NoError(t, db.Create(&models.ContainerSlot{ContainerID: "ghost", Slot: 0, ItemType: "minecraft:coal", Amount: 1, MaxAmount: 64}).Error)

		report, err := NewService(nil, "", zap.NewNop(), db, store).CheckContents(ctx)
		require.NoError(t, err)
		assert.Equal(t, "database", report.Backend)
		assert.Equal(t, []checks.SlotIssue{{Container: "ghost", Slot: 0, Problem: checks.ProblemOrphaned}}, report.Issues)
	})
}
