package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhive/bookhive/internal/errs"
)

func TestCollector_Empty(t *testing.T) {
	v := New()

	assert.True(t, v.Ok())
	assert.NoError(t, v.Err())
}

func TestCollector_CollectsAllViolations(t *testing.T) {
	v := New()
	v.Required("title", "")
	v.IntRange("rate", 9, 1, 5)
	v.Min("number", 0, 1)

	err := v.Err()
	require.Error(t, err)

	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.True(t, verr.Has("title"))
	assert.True(t, verr.Has("rate"))
	assert.True(t, verr.Has("number"))
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestCollector_Required(t *testing.T) {
	v := New()
	v.Required("first_name", "   ")
	v.Required("last_name", "Herbert")

	var verr *errs.ValidationError
	require.True(t, errors.As(v.Err(), &verr))
	assert.True(t, verr.Has("first_name"))
	assert.False(t, verr.Has("last_name"))
}

func TestCollector_IntRange(t *testing.T) {
	for _, valid := range []int{1, 3, 5} {
		v := New()
		v.IntRange("rate", valid, 1, 5)
		assert.True(t, v.Ok(), "rate %d should be valid", valid)
	}
	for _, invalid := range []int{0, 6} {
		v := New()
		v.IntRange("rate", invalid, 1, 5)
		assert.False(t, v.Ok(), "rate %d should be invalid", invalid)
	}
}

func TestCollector_OneOf(t *testing.T) {
	choices := []string{"EBOOK", "AUDIOBOOK"}

	v := New()
	v.OneOf("book_type", "EBOOK", choices)
	assert.True(t, v.Ok())

	v = New()
	v.OneOf("book_type", "VINYL", choices)
	assert.False(t, v.Ok())

	// Empty values are Required's business.
	v = New()
	v.OneOf("book_type", "", choices)
	assert.True(t, v.Ok())
}

func TestCollector_DateOrder(t *testing.T) {
	birth := time.Date(1950, time.March, 1, 0, 0, 0, 0, time.UTC)
	death := time.Date(1949, time.March, 1, 0, 0, 0, 0, time.UTC)

	v := New()
	v.DateOrder("death_date", &birth, &death, "birth_date")
	assert.False(t, v.Ok())

	v = New()
	v.DateOrder("death_date", &birth, nil, "birth_date")
	assert.True(t, v.Ok())

	v = New()
	v.DateOrder("death_date", nil, &death, "birth_date")
	assert.True(t, v.Ok())
}

func TestCollector_ExtensionMatches(t *testing.T) {
	v := New()
	v.ExtensionMatches("content", "intro.epub", ".epub")
	assert.True(t, v.Ok())

	// Case-insensitive.
	v = New()
	v.ExtensionMatches("content", "intro.EPUB", ".epub")
	assert.True(t, v.Ok())

	v = New()
	v.ExtensionMatches("content", "intro.epub", ".pdf")
	require.False(t, v.Ok())
	var verr *errs.ValidationError
	require.True(t, errors.As(v.Err(), &verr))
	assert.True(t, verr.Has("content"))
}

func TestCollector_ExtensionMatches_SkippedWhenAbsent(t *testing.T) {
	v := New()
	v.ExtensionMatches("content", "", ".pdf")
	v.ExtensionMatches("content", "intro.pdf", "")
	assert.True(t, v.Ok())
}
