package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Length limits enforced on tag creation. Content is capped at Discord's
// message length.
const (
	MaxNameLength    = 50
	MaxContentLength = 2000
)

// Validation errors for tag creation.
var (
	ErrEmptyName      = errors.New("tag name must not be empty")
	ErrNameTooLong    = errors.New("tag name is too long")
	ErrEmptyContent   = errors.New("tag content must not be empty")
	ErrContentTooLong = errors.New("tag content is too long")
)

// Tag is a named snippet of text scoped to one guild.
type Tag struct {
	GuildID   snowflake.ID
	Name      string
	Content   string
	AuthorID  snowflake.ID
	CreatedAt time.Time
}

// NewTag validates and creates a Tag. Names are normalized to lowercase so
// lookups are case-insensitive.
func NewTag(guildID snowflake.ID, name, content string, authorID snowflake.ID) (Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	content = strings.TrimSpace(content)

	if name == "" {
		return Tag{}, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return Tag{}, ErrNameTooLong
	}
	if content == "" {
		return Tag{}, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return Tag{}, ErrContentTooLong
	}

	return Tag{
		GuildID:   guildID,
		Name:      name,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}, nil
}
