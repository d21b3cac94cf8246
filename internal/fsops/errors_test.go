package fsops

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Classify(nil))
	})

	t.Run("not exist", func(t *testing.T) {
		err := Classify(&fs.PathError{Op: "lstat", Path: "/missing", Err: fs.ErrNotExist})
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), "/missing", "original OS error text is preserved")
	})

	t.Run("permission", func(t *testing.T) {
		err := Classify(&fs.PathError{Op: "unlinkat", Path: "/protected", Err: fs.ErrPermission})
		assert.True(t, errors.Is(err, ErrPermission))
	})

	t.Run("not a directory", func(t *testing.T) {
		err := Classify(&fs.PathError{Op: "open", Path: "/file/child", Err: syscall.ENOTDIR})
		assert.True(t, errors.Is(err, ErrNotDirectory))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		cause := errors.New("disk on fire")
		assert.Equal(t, cause, Classify(cause))
	})
}
