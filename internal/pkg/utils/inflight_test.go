package utils

import (
	"healthme-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlight(t *testing.T) {
	var guard InFlight

	done, err := guard.Begin()
	require.NoError(t, err)
	assert.True(t, guard.Active())

	_, err = guard.Begin()
	require.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))

	done()
	assert.False(t, guard.Active())

	done, err = guard.Begin()
	require.NoError(t, err)
	done()
}
