package content

import (
	"context"
	"testing"

	"github.com/technest/technest/internal/models"
)

func makePost(id int64, slug string, categories ...models.Category) *models.Post {
	return &models.Post{
		ID:         id,
		Slug:       slug,
		Title:      slug,
		Published:  true,
		Categories: categories,
	}
}

func TestSelector_NoCategoriesReturnsEmpty(t *testing.T) {
	source := &fakeSource{}
	selector := NewSelector(source, NewSamplePool(), 3)

	related := selector.Select(context.Background(), makePost(1, "orphan-post"))
	if len(related) != 0 {
		t.Errorf("expected empty related set, got %d posts", len(related))
	}
	if source.relatedCalls != 0 {
		t.Errorf("expected no store query for a post with no categories, got %d", source.relatedCalls)
	}
}

func TestSelector_CapsAtLimit(t *testing.T) {
	keyboards := models.Category{ID: 1, Name: "Keyboards", Slug: "keyboards"}
	source := &fakeSource{
		related: []models.Post{
			*makePost(2, "a", keyboards),
			*makePost(3, "b", keyboards),
			*makePost(4, "c", keyboards),
			*makePost(5, "d", keyboards),
			*makePost(6, "e", keyboards),
		},
	}
	selector := NewSelector(source, NewSamplePool(), 3)

	related := selector.Select(context.Background(), makePost(1, "source-post", keyboards))
	if len(related) != 3 {
		t.Fatalf("expected 3 related posts, got %d", len(related))
	}
	for _, post := range related {
		if post.ID == 1 {
			t.Error("related set contains the source post")
		}
	}
}

func TestSelector_FallsBackOnEmptyPrimary(t *testing.T) {
	keyboards := models.Category{ID: 1, Name: "Keyboards", Slug: "keyboards"}
	source := &fakeSource{} // primary store knows nothing
	selector := NewSelector(source, NewSamplePool(), 3)

	related := selector.Select(context.Background(), makePost(1, "source-post", keyboards))
	if len(related) == 0 {
		t.Fatal("expected sample-pool fallback for a known category, got empty set")
	}
	if len(related) > 3 {
		t.Errorf("fallback exceeded cap: %d posts", len(related))
	}
	for _, post := range related {
		if post.ID == 1 || post.Slug == "source-post" {
			t.Error("fallback set contains the source post")
		}
	}
}

func TestSelector_FallsBackOnStoreError(t *testing.T) {
	keyboards := models.Category{ID: 1, Name: "Keyboards", Slug: "keyboards"}
	source := &fakeSource{relatedErr: errStoreDown}
	selector := NewSelector(source, NewSamplePool(), 3)

	related := selector.Select(context.Background(), makePost(1, "source-post", keyboards))
	if len(related) == 0 {
		t.Error("expected sample-pool fallback on store error, got empty set")
	}
}

func TestSelector_FallbackExcludesSamplePost(t *testing.T) {
	// The source post is itself one of the sample posts; the fallback
	// must still exclude it.
	keyboards := models.Category{ID: 9101, Name: "Keyboards", Slug: "keyboards"}
	source := &fakeSource{}
	selector := NewSelector(source, NewSamplePool(), 3)

	related := selector.Select(context.Background(), makePost(9001, "nuphy-air75-v2-review", keyboards))
	for _, post := range related {
		if post.ID == 9001 || post.Slug == "nuphy-air75-v2-review" {
			t.Error("fallback returned the source post")
		}
	}
}

func TestSamplePool_UnknownCategory(t *testing.T) {
	pool := NewSamplePool()
	posts := pool.PostsByCategory("does-not-exist", 0, "", 3)
	if len(posts) != 0 {
		t.Errorf("expected no sample posts for unknown category, got %d", len(posts))
	}
}

func TestSamplePool_RespectsLimit(t *testing.T) {
	pool := NewSamplePool()

	posts := pool.PostsByCategory("keyboards", 0, "", 2)
	if len(posts) > 2 {
		t.Errorf("expected at most 2 posts, got %d", len(posts))
	}

	if got := pool.PostsByCategory("keyboards", 0, "", 0); len(got) != 0 {
		t.Errorf("expected empty set for zero limit, got %d", len(got))
	}
}
