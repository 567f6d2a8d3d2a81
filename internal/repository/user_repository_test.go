package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_WithTxBindsTransaction(t *testing.T) {
	base := &gorm.DB{}
	tx := &gorm.DB{}

	repo := NewUserRepository(base)
	bound, ok := repo.WithTx(tx).(*userRepository)
	require.True(t, ok)

	assert.Same(t, tx, bound.db)
	// The original repository keeps its own handle.
	assert.Same(t, base, repo.(*userRepository).db)
}
