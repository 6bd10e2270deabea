package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/glintlab/glintbot/internal/modules/tags/domain"
)

// MemoryRepository is an in-memory implementation of domain.Repository.
type MemoryRepository struct {
	mu   sync.RWMutex
	tags map[snowflake.ID]map[string]domain.Tag
}

// NewMemoryRepository creates a new MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tags: make(map[snowflake.ID]map[string]domain.Tag),
	}
}

// Save stores a new tag. Returns domain.ErrTagExists if the name is taken.
func (r *MemoryRepository) Save(_ context.Context, tag domain.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	guildTags, ok := r.tags[tag.GuildID]
	if !ok {
		guildTags = make(map[string]domain.Tag)
		r.tags[tag.GuildID] = guildTags
	}

	if _, exists := guildTags[tag.Name]; exists {
		return domain.ErrTagExists
	}

	guildTags[tag.Name] = tag
	return nil
}

// Get returns the named tag, or domain.ErrTagNotFound.
func (r *MemoryRepository) Get(
	_ context.Context,
	guildID snowflake.ID,
	name string,
) (domain.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags[guildID][name]
	if !ok {
		return domain.Tag{}, domain.ErrTagNotFound
	}
	return tag, nil
}

// List returns all tags in the guild, sorted by name.
func (r *MemoryRepository) List(_ context.Context, guildID snowflake.ID) ([]domain.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	guildTags := r.tags[guildID]
	tags := make([]domain.Tag, 0, len(guildTags))
	for _, tag := range guildTags {
		tags = append(tags, tag)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

// Count returns the number of stored tags (for testing/monitoring).
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, guildTags := range r.tags {
		total += len(guildTags)
	}
	return total
}

// Ensure MemoryRepository implements Repository.
var _ domain.Repository = (*MemoryRepository)(nil)
