package contracts

import (
	"context"
	"hospadmin-service/internal/app/models"
)

type CatalogUsecase interface {
	ListSpecialties(ctx context.Context) ([]models.CatalogItem, error)
	ListPhysicians(ctx context.Context) ([]models.CatalogItem, error)
	ListMedicalTests(ctx context.Context) ([]models.CatalogItem, error)
	ListReferralSources(ctx context.Context) ([]models.CatalogItem, error)
	// SeedMasterData populates the four catalogs once. It refuses to run when
	// any target collection already holds documents.
	SeedMasterData(ctx context.Context) error
}

type CatalogRepository interface {
	FindActive(ctx context.Context, collection string) ([]models.CatalogItem, error)
	Count(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, items []models.CatalogItem) error
}
