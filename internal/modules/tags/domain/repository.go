package domain

import (
	"context"
	"errors"

	"github.com/disgoorg/snowflake/v2"
)

// Repository errors.
var (
	// ErrTagNotFound is returned when no tag with the given name exists in
	// the guild.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagExists is returned when saving a tag whose name is already
	// taken in the guild.
	ErrTagExists = errors.New("a tag with that name already exists")
)

// Repository stores tags per guild.
type Repository interface {
	// Save stores a new tag. Returns ErrTagExists if the name is taken.
	Save(ctx context.Context, tag Tag) error

	// Get returns the named tag. Returns ErrTagNotFound if it doesn't exist.
	Get(ctx context.Context, guildID snowflake.ID, name string) (Tag, error)

	// List returns all tags in the guild, sorted by name.
	List(ctx context.Context, guildID snowflake.ID) ([]Tag, error)
}
