package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
)

type keywordFilter struct {
	Keyword string `json:"keyword" validate:"required,keyword"`
}

func TestValidator_Token(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		itemID  string
		wantErr bool
	}{
		{"Best Case: plain id", "wood", false},
		{"Best Case: id with punctuation", "iron-ingot_2", false},
		{"Boundary Case: max length", strings.Repeat("a", 100), false},
		{"Boundary Case: over max length", strings.Repeat("a", 101), true},
		{"Error Case: empty", "", true},
		{"Error Case: embedded space", "oak wood", true},
		{"Error Case: control character", "wood\x00", true},
		{"Error Case: newline", "wood\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(SpawnRequest{ItemID: tt.itemID})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Keyword(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(keywordFilter{Keyword: string(domain.KeywordBasic)}))
	assert.NoError(t, v.ValidateStruct(keywordFilter{Keyword: string(domain.KeywordDepleted)}))
	assert.Error(t, v.ValidateStruct(keywordFilter{Keyword: "basic"}))
	assert.Error(t, v.ValidateStruct(keywordFilter{}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("Best Case: fields are named by json tag", func(t *testing.T) {
		err := v.ValidateStruct(CombineRequest{First: "h1", Second: "h1"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must differ from first", fields["second"])
	})

	t.Run("Best Case: oneof lists the choices", func(t *testing.T) {
		fields := FormatValidationError(v.ValidateStruct(SetUnlockRequest{Kind: "tip", ID: "x"}))
		assert.Equal(t, "Must be one of: item recipe", fields["kind"])
	})

	t.Run("Best Case: required and token", func(t *testing.T) {
		fields := FormatValidationError(v.ValidateStruct(MoveRequest{}))
		assert.Equal(t, "This field is required", fields["handle"])

		fields = FormatValidationError(v.ValidateStruct(MoveRequest{Handle: "a b"}))
		assert.Equal(t, "Must not contain whitespace or control characters", fields["handle"])
	})

	t.Run("Edge Case: non-validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("Edge Case: nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"item not found", fmt.Errorf("%w: x", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"recipe not found", fmt.Errorf("%w: x", domain.ErrRecipeNotFound), http.StatusNotFound, ErrMsgRecipeNotFoundError},
		{"unknown handle", fmt.Errorf("%w: h9", domain.ErrInvalidHandle), http.StatusNotFound, ErrMsgHandleNotFoundError},
		{"no hint", crafting.ErrNoHintAvailable, http.StatusNotFound, ErrMsgNoHintAvailable},
		{"invalid input", fmt.Errorf("%w: locked", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"persistence", fmt.Errorf("%w: disk full", domain.ErrPersistence), http.StatusInternalServerError, ErrMsgStorageError},
		{"unexpected", errors.New("kaboom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
