package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/glintlab/glintbot/internal/modules/tags/domain"
)

func mustTag(t *testing.T, guildID snowflake.ID, name, content string) domain.Tag {
	t.Helper()

	tag, err := domain.NewTag(guildID, name, content, snowflake.ID(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tag
}

func TestMemoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	guildID := snowflake.ID(1)

	tag := mustTag(t, guildID, "greeting", "hello there")
	if err := repo.Save(ctx, tag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, guildID, "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Content != "hello there" {
		t.Errorf("expected content %q, got %q", "hello there", got.Content)
	}
}

func TestMemoryRepository_Save_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	guildID := snowflake.ID(1)

	if err := repo.Save(ctx, mustTag(t, guildID, "greeting", "one")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Save(ctx, mustTag(t, guildID, "greeting", "two"))
	if !errors.Is(err, domain.ErrTagExists) {
		t.Fatalf("expected ErrTagExists, got %v", err)
	}
}

func TestMemoryRepository_Get_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), snowflake.ID(1), "missing")
	if !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestMemoryRepository_List_SortedAndScopedToGuild(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	guildID := snowflake.ID(1)
	otherGuildID := snowflake.ID(2)

	for _, name := range []string{"zebra", "apple", "mango"} {
		if err := repo.Save(ctx, mustTag(t, guildID, name, "content")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := repo.Save(ctx, mustTag(t, otherGuildID, "other", "content")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := repo.List(ctx, guildID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"apple", "mango", "zebra"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i, name := range want {
		if tags[i].Name != name {
			t.Errorf("expected tag %d to be %q, got %q", i, name, tags[i].Name)
		}
	}
}

func TestMemoryRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if repo.Count() != 0 {
		t.Errorf("expected 0 tags, got %d", repo.Count())
	}

	if err := repo.Save(ctx, mustTag(t, snowflake.ID(1), "one", "content")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, mustTag(t, snowflake.ID(2), "two", "content")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Count() != 2 {
		t.Errorf("expected 2 tags, got %d", repo.Count())
	}
}
