package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Wrapping(t *testing.T) {
	err := fmt.Errorf("get article: %w", NotFound("Article"))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "get article: Article not found")

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "Article", nf.Entity)

	err = fmt.Errorf("create: %w", Invalid("title", "is required"))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "create: title: is required")

	assert.EqualError(t, Invalid("", "no input data provided"), "no input data provided")

	err = Conflict("slug %q already exists", "hello")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.EqualError(t, err, `slug "hello" already exists`)
}
