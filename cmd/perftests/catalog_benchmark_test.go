package perftests

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	catalog "marketplace/internal/catalogService"
	conversation "marketplace/internal/conversationService"
	"marketplace/internal/database"
	"marketplace/internal/images"
	"marketplace/internal/models"
	"marketplace/internal/repository"
	"marketplace/internal/storage"
)

// setupCatalog opens an in-memory database and seeds numItems listings
// spread over the default categories.
func setupCatalog(b *testing.B, numItems int) (*repository.GormCatalogRepo, *catalog.CatalogService) {
	b.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		b.Fatalf("failed to open database: %v", err)
	}

	repo := repository.NewGormCatalogRepo(db)
	svc := catalog.NewCatalogService(repo, storage.NewDiskStore(b.TempDir()))

	for i := 0; i < numItems; i++ {
		item := models.Item{
			Condition:   models.ConditionUsedGood,
			CategoryID:  uint(i%6 + 1),
			Name:        fmt.Sprintf("Listing %d", i),
			Description: fmt.Sprintf("benchmark listing number %d", i),
			Price:       float64(10 + i%500),
			Location:    "Cairo, Egypt",
			CreatedBy:   uint(i%50 + 1),
			CreatedAt:   time.Now().UTC(),
		}
		if err := repo.CreateItemWithImages(&item, nil); err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
	}
	return repo, svc
}

// Benchmark 1: Search - Single-Threaded
func Benchmark_SearchItems_SingleThreaded(b *testing.B) {
	_, svc := setupCatalog(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		query := fmt.Sprintf("listing %d", i%1000)
		if _, err := svc.Search(query, 0); err != nil {
			b.Fatalf("failed to search items: %v", err)
		}
	}
}

// Benchmark 2: Search - Concurrent readers against one database
func Benchmark_SearchItems_Concurrent(b *testing.B) {
	_, svc := setupCatalog(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			categoryID := uint(rnd.Intn(6) + 1)
			if _, err := svc.Search("listing", categoryID); err != nil {
				b.Fatalf("failed to search items: %v", err)
			}
		}
	})
}

// Benchmark 3: Detail view including the related-items lookup
func Benchmark_ItemDetail(b *testing.B) {
	_, svc := setupCatalog(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := svc.Detail(uint(i%1000 + 1)); err != nil {
			b.Fatalf("failed to get item detail: %v", err)
		}
	}
}

// Benchmark 4: Image batch validation (pure CPU, no database)
func Benchmark_ValidateImageBatch(b *testing.B) {
	batch := make([]images.File, 0, images.MaxBatchSize)
	for i := 0; i < images.MaxBatchSize; i++ {
		batch = append(batch, images.File{
			Name: fmt.Sprintf("photo_%d.jpg", i),
			Size: int64(i+1) * 1024,
		})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if errs := images.Validate(batch); len(errs) != 0 {
			b.Fatalf("unexpected validation errors: %v", errs)
		}
	}
}

// Benchmark 5: Posting messages into one busy conversation
func Benchmark_PostMessage_SharedThread(b *testing.B) {
	db, err := database.Open(":memory:")
	if err != nil {
		b.Fatalf("failed to open database: %v", err)
	}

	catalogRepo := repository.NewGormCatalogRepo(db)
	conversationRepo := repository.NewGormConversationRepo(db)
	svc := conversation.NewConversationService(conversationRepo, catalogRepo)

	users := []models.User{{Username: "seller"}, {Username: "buyer"}}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("failed to seed users: %v", err)
	}
	item := models.Item{
		Condition:  models.ConditionNew,
		CategoryID: 1,
		Name:       "Busy listing",
		Price:      100,
		Location:   "Cairo, Egypt",
		CreatedBy:  1,
		CreatedAt:  time.Now().UTC(),
	}
	if err := catalogRepo.CreateItemWithImages(&item, nil); err != nil {
		b.Fatalf("failed to seed item: %v", err)
	}

	conv, _, err := svc.StartOrResume(item.ID, 2, "opening message")
	if err != nil {
		b.Fatalf("failed to start conversation: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		author := uint(i%2 + 1)
		if _, err := svc.PostMessage(conv.ID, author, fmt.Sprintf("message %d", i)); err != nil {
			b.Fatalf("failed to post message: %v", err)
		}
	}
}
