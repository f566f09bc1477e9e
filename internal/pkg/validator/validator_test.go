package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastre-search-api/internal/pkg/validator"
)

type params struct {
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Size      int    `json:"size" validate:"omitempty,min=1"`
}

func TestDetails(t *testing.T) {
	err := validator.Validate(&params{SortOrder: "up", Size: -1})
	require.Error(t, err)

	details := validator.Details(err)
	assert.Equal(t, "oneof=asc desc", details["params.sort_order"])
	assert.Equal(t, "min=1", details["params.size"])

	assert.Nil(t, validator.Details(assert.AnError))
}
