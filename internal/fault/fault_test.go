package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("classified errors", func(t *testing.T) {
		assert.Equal(t, KindInvalidArgument, KindOf(Invalid("title must not be blank")))
		assert.Equal(t, KindNotFound, KindOf(NotFound("book not found")))
		assert.Equal(t, KindPreconditionFailed, KindOf(Precondition("too old")))
		assert.Equal(t, KindStorage, KindOf(Storage(errors.New("connection refused"))))
	})

	t.Run("wrapped error keeps its kind", func(t *testing.T) {
		err := fmt.Errorf("delete comment: %w", NotFound("comment not found"))
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.True(t, IsNotFound(err))
	})

	t.Run("plain error defaults to storage", func(t *testing.T) {
		err := errors.New("something else")
		assert.Equal(t, KindStorage, KindOf(err))
		assert.Equal(t, "internal error", MessageOf(err))
	})
}

func TestStoragePreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Storage(cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "comment not found", MessageOf(NotFound("comment not found")))
}
