package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAccountReturnsAccountWhenSet(t *testing.T) {
	account, err := requireAccount(&RootFlags{Account: "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", account)
}

func TestRequireAccountFailsWhenUnset(t *testing.T) {
	_, err := requireAccount(&RootFlags{})
	assert.Error(t, err)

	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}

func TestRequireAccountFailsOnNilFlags(t *testing.T) {
	_, err := requireAccount(nil)
	assert.Error(t, err)
}
