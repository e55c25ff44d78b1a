package catalogs

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
)

type catalogUsecase struct {
	CatalogRepository contracts.CatalogRepository
}

func NewCatalogUsecase(catalogRepository contracts.CatalogRepository) contracts.CatalogUsecase {
	return &catalogUsecase{
		CatalogRepository: catalogRepository,
	}
}

func (uc *catalogUsecase) ListSpecialties(ctx context.Context) ([]models.CatalogItem, error) {
	return uc.CatalogRepository.FindActive(ctx, constvars.MongoCollectionSpecialties)
}

func (uc *catalogUsecase) ListPhysicians(ctx context.Context) ([]models.CatalogItem, error) {
	return uc.CatalogRepository.FindActive(ctx, constvars.MongoCollectionPhysicians)
}

func (uc *catalogUsecase) ListMedicalTests(ctx context.Context) ([]models.CatalogItem, error) {
	return uc.CatalogRepository.FindActive(ctx, constvars.MongoCollectionMedicalTests)
}

func (uc *catalogUsecase) ListReferralSources(ctx context.Context) ([]models.CatalogItem, error) {
	return uc.CatalogRepository.FindActive(ctx, constvars.MongoCollectionReferralSources)
}

// SeedMasterData loads the baseline catalogs into an empty deployment. Any
// document in any target collection aborts the whole run, so a reseed can
// never duplicate or clobber curated entries.
func (uc *catalogUsecase) SeedMasterData(ctx context.Context) error {
	targets := map[string][]models.CatalogItem{
		constvars.MongoCollectionSpecialties:     seedSpecialties(),
		constvars.MongoCollectionPhysicians:      seedPhysicians(),
		constvars.MongoCollectionMedicalTests:    seedMedicalTests(),
		constvars.MongoCollectionReferralSources: seedReferralSources(),
	}

	for collection := range targets {
		count, err := uc.CatalogRepository.Count(ctx, collection)
		if err != nil {
			return err
		}
		if count > 0 {
			return exceptions.ErrMasterDataNotEmpty(nil)
		}
	}

	for collection, items := range targets {
		if err := uc.CatalogRepository.InsertMany(ctx, collection, items); err != nil {
			return err
		}
	}
	return nil
}
