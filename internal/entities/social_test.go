package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingProgress_IsComplete(t *testing.T) {
	assert.False(t, (&ReadingProgress{Percentage: 0}).IsComplete())
	assert.False(t, (&ReadingProgress{Percentage: 99}).IsComplete())
	assert.True(t, (&ReadingProgress{Percentage: 100}).IsComplete())
}

func TestReview_LikeCount(t *testing.T) {
	review := &Review{}
	assert.Equal(t, 0, review.LikeCount())

	review.Likes = []Like{{UserID: 1}, {UserID: 2}}
	assert.Equal(t, 2, review.LikeCount())
}
