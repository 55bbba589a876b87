package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	catalog "marketplace/internal/catalogService"
	"marketplace/internal/database"
	"marketplace/internal/models"
	"marketplace/internal/repository"
	"marketplace/internal/storage"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name      string
	NumItems  int
	ReadRatio int  // out of 10 operations, how many are reads
	Burst     bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()
	if len(om.latencies) == 0 {
		return
	}
	latencies := om.latencies
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_Marketplace runs multiple catalog workload scenarios
func Benchmark_Load_Marketplace(b *testing.B) {
	scenarios := []LoadScenario{
		{"ReadHeavy-LargeCatalog", 1000, 9, false},
		{"Mixed-Workload", 200, 7, false},
		{"WriteHeavy-SmallCatalog", 50, 3, false},
		{"Peak-Burst", 200, 7, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	db, err := database.Open(":memory:")
	if err != nil {
		b.Fatalf("failed to open database: %v", err)
	}
	repo := repository.NewGormCatalogRepo(db)
	svc := catalog.NewCatalogService(repo, storage.NewDiskStore(b.TempDir()))

	for i := 0; i < s.NumItems; i++ {
		item := models.Item{
			Condition:   models.ConditionUsedGood,
			CategoryID:  uint(i%6 + 1),
			Name:        fmt.Sprintf("Listing %d", i),
			Description: "load test listing",
			Price:       float64(20 + i%300),
			Location:    "Giza, Egypt",
			CreatedBy:   uint(i%50 + 1),
			CreatedAt:   time.Now().UTC(),
		}
		if err := repo.CreateItemWithImages(&item, nil); err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
	}

	var totalOps, reads, createdItems, failedCreates int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if rnd.Intn(2) == 0 {
					if _, err := svc.Search("listing", uint(rnd.Intn(6)+1)); err != nil {
						b.Logf("ignored search error: %v", err)
					}
				} else {
					itemID := uint(rnd.Intn(s.NumItems) + 1)
					if _, _, err := svc.Detail(itemID); err != nil {
						b.Logf("ignored detail error: %v", err)
					}
				}
				atomic.AddInt64(&reads, 1)
			} else {
				ownerID := uint(rnd.Intn(50) + 1)
				fields := catalog.ItemFields{
					Condition:   models.ConditionNew,
					CategoryID:  fmt.Sprintf("%d", rnd.Intn(6)+1),
					Name:        fmt.Sprintf("Load listing %d", rnd.Int()),
					Description: "created under load",
					Price:       fmt.Sprintf("%d", 10+rnd.Intn(200)),
					Location:    "Giza, Egypt",
				}
				if _, err := svc.Create(ownerID, fields, nil); err != nil {
					b.Logf("ignored create error: %v", err)
					atomic.AddInt64(&failedCreates, 1)
				} else {
					atomic.AddInt64(&createdItems, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Items: %d | Total Ops: %d | Reads: %d | Created: %d | Failed Creates: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumItems, totalOps, reads, createdItems, failedCreates, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
