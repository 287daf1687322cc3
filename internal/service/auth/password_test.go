package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()

	hashed, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.NoError(t, hasher.Compare(hashed, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hashed, "wrong password"))
	assert.Error(t, hasher.Compare("not-a-hash", "correct horse battery staple"))
}
