package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestSnapshotLayoutUseCase_SavesPersistedForm(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)
	tree := entity.DefaultLayoutTree()

	store.EXPECT().Path().Return("/tmp/layout.toml")
	store.EXPECT().Save(ctx, mock.MatchedBy(func(l *entity.PersistedLayout) bool {
		return l.Version == entity.PersistedLayoutVersion && len(l.Nodes) == 5
	})).Return(nil)

	uc := usecase.NewSnapshotLayoutUseCase(store)
	require.NoError(t, uc.Execute(ctx, tree))
}

func TestSnapshotLayoutUseCase_WrapsStoreError(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)
	boom := errors.New("disk full")

	store.EXPECT().Path().Return("/tmp/layout.toml")
	store.EXPECT().Save(ctx, mock.Anything).Return(boom)

	err := usecase.NewSnapshotLayoutUseCase(store).Execute(ctx, entity.FallbackLayoutTree())
	assert.ErrorIs(t, err, boom)
}

func TestSnapshotLayoutUseCase_RequiresTree(t *testing.T) {
	store := portmocks.NewMockLayoutFileStore(t)
	assert.Error(t, usecase.NewSnapshotLayoutUseCase(store).Execute(testContext(), nil))
}

func TestRestoreLayoutUseCase_FromFile(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)
	saved := entity.NewLayoutTree("Editor", "Console")

	store.EXPECT().Load(ctx).Return(entity.ToPersisted(saved), nil)
	store.EXPECT().Path().Return("/tmp/layout.toml")

	out, err := usecase.NewRestoreLayoutUseCase(store).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.RestoreFromFile, out.Source)
	assert.Equal(t, []entity.PanelID{"Editor", "Console"}, out.Tree.Panels())
	assert.NoError(t, out.DecodeErr)
}

func TestRestoreLayoutUseCase_MissingFileUsesDefault(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)

	store.EXPECT().Load(ctx).Return(nil, port.ErrLayoutNotFound)
	store.EXPECT().Path().Return("/tmp/layout.toml")

	out, err := usecase.NewRestoreLayoutUseCase(store).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.RestoreFromDefault, out.Source)
	assert.Equal(t, entity.ToPersisted(entity.DefaultLayoutTree()), entity.ToPersisted(out.Tree))
}

func TestRestoreLayoutUseCase_CorruptFileUsesFallback(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)
	corrupt := &entity.PersistedLayout{
		Version: entity.PersistedLayoutVersion,
		Nodes: []entity.PersistedNode{
			{Kind: entity.NodeKindSplit, Orientation: "vertical", Ratio: 0.5, First: 0, Second: 0},
		},
	}

	store.EXPECT().Load(ctx).Return(corrupt, nil)
	store.EXPECT().Path().Return("/tmp/layout.toml")

	out, err := usecase.NewRestoreLayoutUseCase(store).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.RestoreFromFallback, out.Source)
	assert.ErrorIs(t, out.DecodeErr, entity.ErrDecode)
	assert.Equal(t, []entity.PanelID{entity.PanelViewport}, out.Tree.Panels())
}

func TestRestoreLayoutUseCase_UnparsableFileUsesFallback(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)
	parseErr := &entity.DecodeError{Node: -1, Reason: "toml: unexpected character"}

	store.EXPECT().Load(ctx).Return(nil, parseErr)
	store.EXPECT().Path().Return("/tmp/layout.toml")

	out, err := usecase.NewRestoreLayoutUseCase(store).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.RestoreFromFallback, out.Source)
	assert.Same(t, parseErr, out.DecodeErr)
}

func TestRestoreLayoutUseCase_StorageErrorIsReturned(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockLayoutFileStore(t)
	denied := errors.New("permission denied")

	store.EXPECT().Load(ctx).Return(nil, denied)

	_, err := usecase.NewRestoreLayoutUseCase(store).Execute(ctx)
	assert.ErrorIs(t, err, denied)
}
