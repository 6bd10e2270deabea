package application

import (
	"context"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/glintlab/glintbot/internal/modules/tags/domain"
)

// TagService handles tag-related use cases.
type TagService struct {
	repo domain.Repository
}

// NewTagService creates a new TagService.
func NewTagService(repo domain.Repository) *TagService {
	return &TagService{repo: repo}
}

// CreateTagInput contains the input for the Create use case.
type CreateTagInput struct {
	GuildID  snowflake.ID
	Name     string
	Content  string
	AuthorID snowflake.ID
}

// CreateTagOutput contains the output for the Create use case.
type CreateTagOutput struct {
	Tag domain.Tag
}

// Create validates and stores a new tag.
func (s *TagService) Create(ctx context.Context, input CreateTagInput) (*CreateTagOutput, error) {
	tag, err := domain.NewTag(input.GuildID, input.Name, input.Content, input.AuthorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, tag); err != nil {
		return nil, err
	}

	return &CreateTagOutput{Tag: tag}, nil
}

// GetTagInput contains the input for the Get use case.
type GetTagInput struct {
	GuildID snowflake.ID
	Name    string
}

// GetTagOutput contains the output for the Get use case.
type GetTagOutput struct {
	Tag domain.Tag
}

// Get returns the named tag. Lookup is case-insensitive.
func (s *TagService) Get(ctx context.Context, input GetTagInput) (*GetTagOutput, error) {
	tag, err := s.repo.Get(ctx, input.GuildID, strings.ToLower(input.Name))
	if err != nil {
		return nil, err
	}

	return &GetTagOutput{Tag: tag}, nil
}

// ListTagsInput contains the input for the List use case.
type ListTagsInput struct {
	GuildID snowflake.ID
}

// ListTagsOutput contains the output for the List use case.
type ListTagsOutput struct {
	Tags []domain.Tag
}

// List returns all tags in the guild, sorted by name.
func (s *TagService) List(ctx context.Context, input ListTagsInput) (*ListTagsOutput, error) {
	tags, err := s.repo.List(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &ListTagsOutput{Tags: tags}, nil
}

// SearchTagsInput contains the input for the Search use case.
type SearchTagsInput struct {
	GuildID snowflake.ID
	Prefix  string
	Limit   int
}

// SearchTagsOutput contains the output for the Search use case.
type SearchTagsOutput struct {
	Names []string
}

// Search returns tag names starting with the given prefix, sorted, up to
// Limit entries. An empty prefix matches every tag.
func (s *TagService) Search(ctx context.Context, input SearchTagsInput) (*SearchTagsOutput, error) {
	tags, err := s.repo.List(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(strings.TrimSpace(input.Prefix))

	var names []string
	for _, tag := range tags {
		if !strings.HasPrefix(tag.Name, prefix) {
			continue
		}
		names = append(names, tag.Name)
		if input.Limit > 0 && len(names) >= input.Limit {
			break
		}
	}

	return &SearchTagsOutput{Names: names}, nil
}
