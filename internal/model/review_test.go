package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPending(t *testing.T) {
	items := []ManualReviewItem{
		{ID: 1, Status: ReviewPending},
		{ID: 2, Status: ReviewApproved},
		{ID: 3, Status: ReviewPending},
		{ID: 4, Status: ReviewRejected},
		{ID: 5, Status: ReviewOverridden},
	}

	pending := FilterPending(items)
	assert.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].ID)
	assert.Equal(t, 3, pending[1].ID)

	assert.Empty(t, FilterPending(nil))
}
