package service

import (
	"errors"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, ErrorCode(oops.Code(CodeNotFound).Errorf("gone")))
	assert.Equal(t, CodeConflict, ErrorCode(oops.Code(CodeConflict).Wrap(errors.New("dup"))))
	assert.Equal(t, CodeInternal, ErrorCode(errors.New("plain")))
	assert.Equal(t, CodeInternal, ErrorCode(oops.Errorf("no code")))
	assert.True(t, IsCode(oops.Code(CodeForbidden).Errorf("no"), CodeForbidden))
}
