package services

import (
	"strings"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedbackDefaults(t *testing.T) {
	svc := NewFeedbackService(newTestDB(t))

	fb, err := svc.Create(1, "The progress chart is great", "")
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackTypeSuggestion, fb.Type)
	assert.Equal(t, models.FeedbackStatusPending, fb.Status)
}

func TestCreateFeedbackValidation(t *testing.T) {
	svc := NewFeedbackService(newTestDB(t))

	_, err := svc.Create(1, "   ", "")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(1, strings.Repeat("x", 1001), "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(1, "hello", "rant")
	assert.ErrorAs(t, err, &verr)
}

func TestListFeedbackScopedToOwner(t *testing.T) {
	svc := NewFeedbackService(newTestDB(t))

	_, err := svc.Create(1, "mine", models.FeedbackTypeBug)
	require.NoError(t, err)
	_, err = svc.Create(2, "theirs", models.FeedbackTypeBug)
	require.NoError(t, err)

	entries, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mine", entries[0].Content)
}
