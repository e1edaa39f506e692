package generation

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"codegen-app-api/core/domain"
	"codegen-app-api/core/interfaces"
)

// nopLogger satisfies interfaces.Logger and discards everything.
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// fakeCache is a map-backed cache that counts operations.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if data, ok := c.data[key]; ok {
		return data, nil
	}
	return nil, context.Canceled // any non-nil error reads as a miss
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func newTestService(cache interfaces.Cache) *Service {
	return NewService(interfaces.Dependencies{
		Cache:  cache,
		Logger: nopLogger{},
	}, Config{
		MinQualityScore: 60,
		MaxDepth:        100,
		IncludeMetaTags: true,
		ResultCacheTTL:  time.Hour,
	})
}

func sampleNode() *domain.DesignNode {
	return &domain.DesignNode{
		ID:         "1:1",
		Name:       "Landing Page",
		Type:       domain.NodeFrame,
		LayoutMode: domain.LayoutModeVertical,
		Children: []domain.DesignNode{
			{ID: "1:2", Type: domain.NodeText, Characters: "Hello", Style: &domain.TypeStyle{FontSize: 40}},
		},
	}
}

func assertFailed(t *testing.T, result *domain.GenerationResult) {
	t.Helper()
	if result == nil {
		t.Fatal("Generate() returned nil")
	}
	if result.Status != domain.StatusFailed {
		t.Fatalf("Status = %q, want %q", result.Status, domain.StatusFailed)
	}
	if result.HTMLCode != "" {
		t.Errorf("failed result carries code: %q", result.HTMLCode)
	}
	if result.Metadata.ComponentCount != 0 || result.Metadata.TotalLines != 0 {
		t.Errorf("failed result carries metadata: %+v", result.Metadata)
	}
	if result.ID == "" {
		t.Error("failed result has no ID")
	}
}

func TestService_Generate_Completed(t *testing.T) {
	svc := newTestService(nil)

	result := svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 90)

	if result.Status != domain.StatusCompleted {
		t.Fatalf("Status = %q, want %q (%s)", result.Status, domain.StatusCompleted, result.ErrorMessage)
	}
	if !strings.Contains(result.HTMLCode, "<h2>Hello</h2>") {
		t.Errorf("generated code missing heading:\n%s", result.HTMLCode)
	}
	if result.Metadata.ComponentCount == 0 {
		t.Error("completed result has zero metadata")
	}
	if result.ID == "" {
		t.Error("completed result has no ID")
	}
}

func TestService_Generate_NilNode(t *testing.T) {
	svc := newTestService(nil)
	assertFailed(t, svc.Generate(context.Background(), nil, domain.DefaultOptions(), 90))
}

func TestService_Generate_UnsupportedFramework(t *testing.T) {
	svc := newTestService(nil)

	options := domain.DefaultOptions()
	options.Framework = "svelte"
	result := svc.Generate(context.Background(), sampleNode(), options, 90)

	assertFailed(t, result)
	if !strings.Contains(result.ErrorMessage, "svelte") {
		t.Errorf("Error = %q, want mention of the rejected framework", result.ErrorMessage)
	}
}

func TestService_Generate_LowQualityScore(t *testing.T) {
	svc := newTestService(nil)

	result := svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 59)
	assertFailed(t, result)

	// At the threshold generation proceeds
	result = svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 60)
	if result.Status != domain.StatusCompleted {
		t.Errorf("Status at threshold = %q, want %q", result.Status, domain.StatusCompleted)
	}
}

func TestService_Generate_DepthGuard(t *testing.T) {
	svc := NewService(interfaces.Dependencies{Logger: nopLogger{}}, Config{
		MinQualityScore: 60,
		MaxDepth:        3,
	})

	node := &domain.DesignNode{ID: "leaf", Type: domain.NodeFrame}
	for i := 0; i < 10; i++ {
		node = &domain.DesignNode{ID: "n", Type: domain.NodeFrame, Children: []domain.DesignNode{*node}}
	}

	assertFailed(t, svc.Generate(context.Background(), node, domain.DefaultOptions(), 90))
}

func TestService_Generate_CachesCompletedResults(t *testing.T) {
	cache := newFakeCache()
	svc := newTestService(cache)

	first := svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 90)
	if first.Status != domain.StatusCompleted {
		t.Fatalf("Status = %q, want completed", first.Status)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second := svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 90)
	if cache.sets != 1 {
		t.Errorf("cache sets after hit = %d, want 1", cache.sets)
	}
	if second.ID != first.ID {
		t.Errorf("cached result ID = %q, want %q", second.ID, first.ID)
	}
	if second.HTMLCode != first.HTMLCode {
		t.Error("cached result code differs from original")
	}
}

func TestService_Generate_CacheKeyCoversInputs(t *testing.T) {
	cache := newFakeCache()
	svc := newTestService(cache)

	svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 90)

	// A different subtree must not serve the first result
	changed := sampleNode()
	changed.Children[0].Characters = "Goodbye"
	result := svc.Generate(context.Background(), changed, domain.DefaultOptions(), 90)

	if cache.sets != 2 {
		t.Errorf("cache sets = %d, want 2 (distinct keys)", cache.sets)
	}
	if !strings.Contains(result.HTMLCode, "Goodbye") {
		t.Error("stale cached result served for an edited subtree")
	}
}

func TestService_Generate_FailuresAreNotCached(t *testing.T) {
	cache := newFakeCache()
	svc := newTestService(cache)

	svc.Generate(context.Background(), sampleNode(), domain.DefaultOptions(), 10)
	if cache.sets != 0 {
		t.Errorf("cache sets = %d, want 0 for a failed run", cache.sets)
	}
}

func TestService_Generate_ReactOutput(t *testing.T) {
	svc := newTestService(nil)

	options := domain.DefaultOptions()
	options.Framework = domain.FrameworkReactJSX
	result := svc.Generate(context.Background(), sampleNode(), options, 90)

	if result.Status != domain.StatusCompleted {
		t.Fatalf("Status = %q, want completed (%s)", result.Status, result.ErrorMessage)
	}
	if !strings.Contains(result.HTMLCode, "export default function LandingPage() {") {
		t.Errorf("JSX output missing component declaration:\n%s", result.HTMLCode)
	}
	if !strings.Contains(result.HTMLCode, "className=") {
		t.Errorf("JSX output kept raw class attributes:\n%s", result.HTMLCode)
	}
	// Metadata still reflects the underlying HTML document
	if result.Metadata.ComponentCount == 0 {
		t.Error("JSX result has zero metadata")
	}
}

func TestService_Generate_VueOutput(t *testing.T) {
	svc := newTestService(nil)

	options := domain.DefaultOptions()
	options.Framework = domain.FrameworkVueSFC
	result := svc.Generate(context.Background(), sampleNode(), options, 90)

	if result.Status != domain.StatusCompleted {
		t.Fatalf("Status = %q, want completed (%s)", result.Status, result.ErrorMessage)
	}
	if !strings.HasPrefix(result.HTMLCode, "<template>") {
		t.Errorf("SFC output missing template block:\n%s", result.HTMLCode)
	}
}

func TestService_Generate_MinifyOutput(t *testing.T) {
	svc := newTestService(nil)

	options := domain.DefaultOptions()
	options.MinifyOutput = true
	result := svc.Generate(context.Background(), sampleNode(), options, 90)

	if strings.Contains(result.HTMLCode, "\n") {
		t.Error("minified output contains newlines")
	}
	// Scoring ran on the pretty form, not the single minified line
	if result.Metadata.TotalLines <= 1 {
		t.Errorf("TotalLines = %d, want pretty-form line count", result.Metadata.TotalLines)
	}
}

func TestService_GenerateBatch(t *testing.T) {
	svc := newTestService(nil)

	requests := []interfaces.GenerationRequest{
		{Node: sampleNode(), Options: domain.DefaultOptions(), QualityScore: 90},
		{Node: nil, Options: domain.DefaultOptions(), QualityScore: 90},
		{Node: sampleNode(), Options: domain.DefaultOptions(), QualityScore: 10},
		{Node: sampleNode(), Options: domain.DefaultOptions(), QualityScore: 100},
	}

	results := svc.GenerateBatch(context.Background(), requests)

	if len(results) != len(requests) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(requests))
	}
	wantStatus := []domain.GenerationStatus{
		domain.StatusCompleted,
		domain.StatusFailed,
		domain.StatusFailed,
		domain.StatusCompleted,
	}
	for i, want := range wantStatus {
		if results[i] == nil {
			t.Fatalf("results[%d] is nil", i)
		}
		if results[i].Status != want {
			t.Errorf("results[%d].Status = %q, want %q", i, results[i].Status, want)
		}
	}
}

func TestService_GenerateBatch_CancelledContext(t *testing.T) {
	svc := newTestService(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	requests := make([]interfaces.GenerationRequest, 8)
	for i := range requests {
		requests[i] = interfaces.GenerationRequest{Node: sampleNode(), Options: domain.DefaultOptions(), QualityScore: 90}
	}

	results := svc.GenerateBatch(ctx, requests)
	for i, result := range results {
		if result == nil {
			t.Fatalf("results[%d] is nil", i)
		}
	}
}
