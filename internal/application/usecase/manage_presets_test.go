package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
)

func TestManagePresetsUseCase_SaveNew(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutPresetRepository(t)

	repo.EXPECT().FindByName(ctx, "wide").Return(nil, nil)
	repo.EXPECT().Save(ctx, mock.MatchedBy(func(p *entity.LayoutPreset) bool {
		return p.Name == "wide" && p.PanelCount == 3 && p.ID != ""
	})).Return(nil)

	uc := usecase.NewManagePresetsUseCase(repo)
	preset, err := uc.Save(ctx, "  wide ", entity.DefaultLayoutTree())
	require.NoError(t, err)
	assert.Equal(t, "wide", preset.Name)
}

func TestManagePresetsUseCase_SaveReplaceKeepsIdentity(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutPresetRepository(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &entity.LayoutPreset{ID: "preset-1", Name: "wide", CreatedAt: created}

	repo.EXPECT().FindByName(ctx, "wide").Return(existing, nil)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)

	preset, err := usecase.NewManagePresetsUseCase(repo).Save(ctx, "wide", entity.FallbackLayoutTree())
	require.NoError(t, err)
	assert.Equal(t, entity.PresetID("preset-1"), preset.ID)
	assert.True(t, preset.CreatedAt.Equal(created))
	assert.True(t, preset.UpdatedAt.After(created))
}

func TestManagePresetsUseCase_NameRequired(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePresetsUseCase(repomocks.NewMockLayoutPresetRepository(t))

	_, err := uc.Save(ctx, "   ", entity.DefaultLayoutTree())
	assert.ErrorIs(t, err, usecase.ErrPresetNameRequired)
	_, err = uc.Load(ctx, "")
	assert.ErrorIs(t, err, usecase.ErrPresetNameRequired)
	assert.ErrorIs(t, uc.Delete(ctx, ""), usecase.ErrPresetNameRequired)
}

func TestManagePresetsUseCase_Load(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutPresetRepository(t)
	stored := entity.NewLayoutPreset("triple", entity.DefaultLayoutTree())

	repo.EXPECT().FindByName(ctx, "triple").Return(stored, nil)
	repo.EXPECT().FindByName(ctx, "ghost").Return(nil, nil)

	uc := usecase.NewManagePresetsUseCase(repo)
	tree, err := uc.Load(ctx, "triple")
	require.NoError(t, err)
	assert.Len(t, tree.Panels(), 3)

	_, err = uc.Load(ctx, "ghost")
	assert.ErrorIs(t, err, usecase.ErrPresetNotFound)
}

func TestManagePresetsUseCase_LoadCorruptPreset(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutPresetRepository(t)
	broken := &entity.LayoutPreset{Name: "broken", Layout: &entity.PersistedLayout{Version: 1}}

	repo.EXPECT().FindByName(ctx, "broken").Return(broken, nil)

	_, err := usecase.NewManagePresetsUseCase(repo).Load(ctx, "broken")
	assert.ErrorIs(t, err, entity.ErrDecode)
}

func TestManagePresetsUseCase_Delete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutPresetRepository(t)

	repo.EXPECT().FindByName(ctx, "wide").Return(&entity.LayoutPreset{Name: "wide"}, nil)
	repo.EXPECT().Delete(ctx, "wide").Return(nil)
	repo.EXPECT().FindByName(ctx, "ghost").Return(nil, nil)

	uc := usecase.NewManagePresetsUseCase(repo)
	require.NoError(t, uc.Delete(ctx, "wide"))
	assert.ErrorIs(t, uc.Delete(ctx, "ghost"), usecase.ErrPresetNotFound)
}

func TestManagePresetsUseCase_ListError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutPresetRepository(t)
	boom := errors.New("locked")

	repo.EXPECT().List(ctx).Return(nil, boom)

	_, err := usecase.NewManagePresetsUseCase(repo).List(ctx)
	assert.ErrorIs(t, err, boom)
}
