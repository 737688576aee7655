package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("approve: %w", Conflict("Squad is full"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, IsKind(nil, KindInternal))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindForbidden:    http.StatusForbidden,
		KindInvalidState: http.StatusUnprocessableEntity,
		KindValidation:   http.StatusBadRequest,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), kind)
	}
}

func TestPublicMessageHidesCause(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := Internal(cause, "Failed to load squad")

	assert.Equal(t, "Failed to load squad", PublicMessage(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "An unexpected error occurred on the server", PublicMessage(cause))
}
