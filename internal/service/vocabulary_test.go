package service

import (
	"testing"

	"cardbox/internal/domain"
	"cardbox/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVocabularyService_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		translation   string
		expectedError error
	}{
		{
			name:        "valid item",
			word:        "maison",
			translation: "house",
		},
		{
			name:        "trims whitespace",
			word:        "  maison  ",
			translation: " house ",
		},
		{
			name:          "empty word",
			word:          "",
			translation:   "house",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "empty translation",
			word:          "maison",
			translation:   "   ",
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabularyRepository)
			service := NewVocabularyService(mockRepo)

			if tt.expectedError == nil {
				stored := testutil.NewTestVocabularyItem(1, 123, "maison", "house")
				mockRepo.On("CreateItem", mock.MatchedBy(func(item *domain.VocabularyItem) bool {
					return item.OwnerID == 123 && item.Word == "maison" && item.Translation == "house"
				})).Return(stored, nil)
			}

			item, err := service.AddItem(123, tt.word, tt.translation, "", "", "", "")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "maison", item.Word)
				assert.Equal(t, domain.MasteryNew, item.Mastery)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabularyService_AddItem_Idempotent(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	service := NewVocabularyService(mockRepo)

	// The repository returns the stored item for a duplicate word; both
	// calls surface the same record.
	existing := testutil.NewTestVocabularyItem(42, 123, "maison", "house")
	existing.ReviewCount = 7
	existing.CorrectCount = 6
	existing.Mastery = domain.MasteryFamiliar
	mockRepo.On("CreateItem", mock.Anything).Return(existing, nil).Twice()

	first, err := service.AddItem(123, "maison", "house", "", "", "", "")
	assert.NoError(t, err)
	second, err := service.AddItem(123, "maison", "house", "", "", "", "")
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.ReviewCount)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_ListItems(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	service := NewVocabularyService(mockRepo)

	items := []domain.VocabularyItem{
		*testutil.NewTestVocabularyItem(1, 123, "maison", "house"),
		*testutil.NewTestVocabularyItem(2, 123, "chat", "cat"),
	}
	mockRepo.On("ListItems", int64(123)).Return(items, nil)

	result, err := service.ListItems(123)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "maison", result[0].Word)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_ReviewItem(t *testing.T) {
	tests := []struct {
		name            string
		reviewCount     int
		correctCount    int
		correct         bool
		expectedReviews int
		expectedCorrect int
		expectedMastery domain.MasteryLevel
	}{
		{
			name:            "correct answer",
			reviewCount:     3,
			correctCount:    2,
			correct:         true,
			expectedReviews: 4,
			expectedCorrect: 3,
			expectedMastery: domain.MasteryLearning,
		},
		{
			name:            "wrong answer",
			reviewCount:     3,
			correctCount:    2,
			correct:         false,
			expectedReviews: 4,
			expectedCorrect: 2,
			expectedMastery: domain.MasteryLearning,
		},
		{
			name:            "reaches mastered",
			reviewCount:     9,
			correctCount:    9,
			correct:         true,
			expectedReviews: 10,
			expectedCorrect: 10,
			expectedMastery: domain.MasteryMastered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabularyRepository)
			service := NewVocabularyService(mockRepo)

			item := testutil.NewTestVocabularyItem(1, 123, "maison", "house")
			item.ReviewCount = tt.reviewCount
			item.CorrectCount = tt.correctCount

			mockRepo.On("GetItem", int64(123), int64(1)).Return(item, nil)
			mockRepo.On("UpdateReview", int64(123), int64(1),
				tt.expectedReviews, tt.expectedCorrect, tt.expectedMastery).Return(nil)

			result, err := service.ReviewItem(123, 1, tt.correct)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReviews, result.ReviewCount)
			assert.Equal(t, tt.expectedCorrect, result.CorrectCount)
			assert.Equal(t, tt.expectedMastery, result.Mastery)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabularyService_ReviewItem_NotFound(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	service := NewVocabularyService(mockRepo)

	mockRepo.On("GetItem", int64(123), int64(404)).Return(nil, domain.ErrNotFound)

	_, err := service.ReviewItem(123, 404, true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "UpdateReview",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVocabularyService_DeleteItem(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError error
	}{
		{name: "successful delete"},
		{name: "not found", mockError: domain.ErrNotFound, expectedError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabularyRepository)
			service := NewVocabularyService(mockRepo)

			mockRepo.On("DeleteItem", int64(123), int64(1)).Return(tt.mockError)

			err := service.DeleteItem(123, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
