package service

import (
	"fmt"
	"testing"

	"cardbox/internal/domain"
	"cardbox/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestDeckService_CreateDeck(t *testing.T) {
	tests := []struct {
		name          string
		deckName      string
		description   string
		color         string
		mockError     error
		expectedError error
	}{
		{
			name:        "valid deck",
			deckName:    "French basics",
			description: "common phrases",
			color:       "#3366ff",
		},
		{
			name:     "name only",
			deckName: "Verbs",
		},
		{
			name:          "empty name",
			deckName:      "   ",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "database error",
			deckName:      "Verbs",
			mockError:     fmt.Errorf("db error"),
			expectedError: nil, // plain error, checked separately
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockDeckRepository)
			service := NewDeckService(mockRepo)

			trimmed := tt.deckName
			if tt.expectedError == nil {
				if tt.mockError == nil {
					deck := testutil.NewTestDeck(1, 123, trimmed, 0)
					mockRepo.On("CreateDeck", int64(123), trimmed, tt.description, tt.color).Return(deck, nil)
				} else {
					mockRepo.On("CreateDeck", int64(123), trimmed, tt.description, tt.color).Return(nil, tt.mockError)
				}
			}

			deck, err := service.CreateDeck(123, tt.deckName, tt.description, tt.color)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.mockError != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, 0, deck.CardCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeckService_UpdateDeck(t *testing.T) {
	name := "Renamed"
	color := "#00ff00"
	blank := "  "

	tests := []struct {
		name          string
		newName       *string
		newColor      *string
		getError      error
		expectedError error
	}{
		{
			name:     "rename only",
			newName:  &name,
			newColor: nil,
		},
		{
			name:     "color only",
			newColor: &color,
		},
		{
			name:          "blank name rejected",
			newName:       &blank,
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "deck not found",
			newName:       &name,
			getError:      domain.ErrNotFound,
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockDeckRepository)
			service := NewDeckService(mockRepo)

			if tt.getError != nil {
				mockRepo.On("GetDeck", int64(123), int64(1)).Return(nil, tt.getError)
			} else {
				existing := testutil.NewTestDeck(1, 123, "Original", 3)
				mockRepo.On("GetDeck", int64(123), int64(1)).Return(existing, nil)
				if tt.expectedError == nil {
					mockRepo.On("UpdateDeck", existing).Return(nil)
				}
			}

			deck, err := service.UpdateDeck(123, 1, tt.newName, nil, tt.newColor)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			if tt.newName != nil {
				assert.Equal(t, "Renamed", deck.Name)
			} else {
				assert.Equal(t, "Original", deck.Name)
			}
			if tt.newColor != nil {
				assert.Equal(t, *tt.newColor, deck.Color)
			}
			assert.Equal(t, 3, deck.CardCount)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeckService_DeleteDeck(t *testing.T) {
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
			mockRepo := new(testutil.MockDeckRepository)
			service := NewDeckService(mockRepo)

			mockRepo.On("DeleteDeck", int64(123), int64(1)).Return(tt.mockError)

			err := service.DeleteDeck(123, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeckService_ListDecks(t *testing.T) {
	mockRepo := new(testutil.MockDeckRepository)
	service := NewDeckService(mockRepo)

	decks := []domain.Deck{
		*testutil.NewTestDeck(1, 123, "A", 2),
		*testutil.NewTestDeck(2, 123, "B", 0),
	}
	mockRepo.On("ListDecks", int64(123)).Return(decks, nil)

	result, err := service.ListDecks(123)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertExpectations(t)
}
