package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/clutchboard/clutchboard-server/internal/errors"
)

type testRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=64"`
	Kills int    `json:"kills" validate:"gte=0"`
	Block int    `json:"block" validate:"oneof=1 2"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{Name: "Shadow", Kills: 12, Block: 1})
	assert.NoError(t, err)
}

func TestValidateMissingRequired(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{Kills: 3, Block: 2})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	// Field errors are keyed by JSON tag name, not Go field name.
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "name")
}

func TestValidateNegativeCounter(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{Name: "Shadow", Kills: -1, Block: 1})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "kills")
}

func TestValidateOneOf(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{Name: "Shadow", Kills: 0, Block: 3})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be one of: 1 2", details["block"])
}
