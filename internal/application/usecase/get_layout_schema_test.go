package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
)

func TestGetLayoutSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns provider document", func(t *testing.T) {
		provider := portmocks.NewMockLayoutSchemaProvider(t)
		provider.EXPECT().LayoutSchema().Return([]byte(`{"type":"object"}`), nil)

		doc, err := usecase.NewGetLayoutSchemaUseCase(provider).Execute(testContext())
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"object"}`, string(doc))
	})

	t.Run("wraps provider error", func(t *testing.T) {
		provider := portmocks.NewMockLayoutSchemaProvider(t)
		boom := errors.New("reflect failed")
		provider.EXPECT().LayoutSchema().Return(nil, boom)

		_, err := usecase.NewGetLayoutSchemaUseCase(provider).Execute(testContext())
		assert.ErrorIs(t, err, boom)
	})
}
