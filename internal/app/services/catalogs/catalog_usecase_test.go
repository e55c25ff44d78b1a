package catalogs

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCatalogRepository struct {
	collections map[string][]models.CatalogItem
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{collections: map[string][]models.CatalogItem{}}
}

func (f *fakeCatalogRepository) FindActive(_ context.Context, collection string) ([]models.CatalogItem, error) {
	active := make([]models.CatalogItem, 0)
	for _, item := range f.collections[collection] {
		if item.Active {
			active = append(active, item)
		}
	}
	return active, nil
}

func (f *fakeCatalogRepository) Count(_ context.Context, collection string) (int64, error) {
	return int64(len(f.collections[collection])), nil
}

func (f *fakeCatalogRepository) InsertMany(_ context.Context, collection string, items []models.CatalogItem) error {
	f.collections[collection] = append(f.collections[collection], items...)
	return nil
}

func TestSeedMasterData(t *testing.T) {
	t.Run("Seeds All Four Catalogs", func(t *testing.T) {
		repo := newFakeCatalogRepository()
		uc := NewCatalogUsecase(repo)

		err := uc.SeedMasterData(context.Background())

		assert.NoError(t, err)
		assert.NotEmpty(t, repo.collections[constvars.MongoCollectionSpecialties])
		assert.NotEmpty(t, repo.collections[constvars.MongoCollectionPhysicians])
		assert.NotEmpty(t, repo.collections[constvars.MongoCollectionMedicalTests])
		assert.NotEmpty(t, repo.collections[constvars.MongoCollectionReferralSources])
	})

	t.Run("Second Seed Is Refused", func(t *testing.T) {
		repo := newFakeCatalogRepository()
		uc := NewCatalogUsecase(repo)

		err := uc.SeedMasterData(context.Background())
		assert.NoError(t, err)

		err = uc.SeedMasterData(context.Background())

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Any Populated Collection Aborts The Run", func(t *testing.T) {
		repo := newFakeCatalogRepository()
		repo.collections[constvars.MongoCollectionPhysicians] = []models.CatalogItem{{Code: "M999", Name: "Dr. Previo", Active: true}}
		uc := NewCatalogUsecase(repo)

		err := uc.SeedMasterData(context.Background())

		assert.Error(t, err)
		assert.Empty(t, repo.collections[constvars.MongoCollectionSpecialties], "no partial seed on refusal")
	})
}

func TestListCatalogs(t *testing.T) {
	t.Run("Only Active Items Are Listed", func(t *testing.T) {
		repo := newFakeCatalogRepository()
		repo.collections[constvars.MongoCollectionSpecialties] = []models.CatalogItem{
			{Code: "CAR", Name: "Cardiología", Active: true},
			{Code: "OLD", Name: "Servicio retirado", Active: false},
		}
		uc := NewCatalogUsecase(repo)

		items, err := uc.ListSpecialties(context.Background())

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "CAR", items[0].Code)
	})
}
