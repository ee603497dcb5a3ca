package input

import (
	"context"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_commands.go

// LayoutCommands is the slice of the layout use case the drag controller drives.
type LayoutCommands interface {
	Tree() *entity.LayoutTree
	MovePanel(ctx context.Context, input usecase.MovePanelInput) (*usecase.MutationOutput, error)
	SetSplitRatio(ctx context.Context, split entity.ContainerID, ratio float64) (*usecase.MutationOutput, error)
	RaiseFloating(ctx context.Context, window entity.ContainerID) (*usecase.MutationOutput, error)
	MoveFloating(ctx context.Context, window entity.ContainerID, frame entity.Rect) (*usecase.MutationOutput, error)
	SealHistory()
}

var _ LayoutCommands = (*usecase.ManageLayoutUseCase)(nil)
