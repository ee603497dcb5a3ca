package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	upsertPresetSQL = `INSERT INTO layout_presets (id, name, layout_json, panel_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    layout_json = excluded.layout_json,
    panel_count = excluded.panel_count,
    updated_at  = excluded.updated_at
RETURNING id, created_at`

	selectPresetColumns = `SELECT id, name, layout_json, panel_count, created_at, updated_at FROM layout_presets`

	getPresetByNameSQL = selectPresetColumns + ` WHERE name = ?`
	listPresetsSQL     = selectPresetColumns + ` ORDER BY name`
	deletePresetSQL    = `DELETE FROM layout_presets WHERE name = ?`
)

type layoutPresetRepo struct {
	db *sql.DB
}

// NewLayoutPresetRepository creates a new SQLite-backed preset repository.
func NewLayoutPresetRepository(db *sql.DB) repository.LayoutPresetRepository {
	return &layoutPresetRepo{db: db}
}

func (r *layoutPresetRepo) Save(ctx context.Context, preset *entity.LayoutPreset) error {
	log := logging.FromContext(ctx)
	if preset == nil || preset.Layout == nil {
		return fmt.Errorf("preset layout required")
	}

	layoutJSON, err := json.Marshal(preset.Layout)
	if err != nil {
		return fmt.Errorf("encode preset layout: %w", err)
	}

	log.Debug().Str("name", preset.Name).Int("panels", preset.PanelCount).Msg("saving layout preset")

	var id, createdAt string
	err = r.db.QueryRowContext(ctx, upsertPresetSQL,
		string(preset.ID),
		preset.Name,
		string(layoutJSON),
		preset.PanelCount,
		formatTime(preset.CreatedAt),
		formatTime(preset.UpdatedAt),
	).Scan(&id, &createdAt)
	if err != nil {
		return err
	}

	preset.ID = entity.PresetID(id)
	if t, err := parseTime(createdAt); err == nil {
		preset.CreatedAt = t
	}
	return nil
}

func (r *layoutPresetRepo) FindByName(ctx context.Context, name string) (*entity.LayoutPreset, error) {
	preset, err := scanPreset(r.db.QueryRowContext(ctx, getPresetByNameSQL, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return preset, nil
}

func (r *layoutPresetRepo) List(ctx context.Context) ([]*entity.LayoutPreset, error) {
	rows, err := r.db.QueryContext(ctx, listPresetsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*entity.LayoutPreset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, rows.Err()
}

func (r *layoutPresetRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("name", name).Msg("deleting layout preset")
	_, err := r.db.ExecContext(ctx, deletePresetSQL, name)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*entity.LayoutPreset, error) {
	var (
		id, name, layoutJSON string
		panelCount           int
		createdAt, updatedAt string
	)
	if err := row.Scan(&id, &name, &layoutJSON, &panelCount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var layout entity.PersistedLayout
	if err := json.Unmarshal([]byte(layoutJSON), &layout); err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, &entity.DecodeError{Node: -1, Reason: err.Error()})
	}

	created, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("preset %q created_at: %w", name, err)
	}
	updated, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("preset %q updated_at: %w", name, err)
	}

	return &entity.LayoutPreset{
		ID:         entity.PresetID(id),
		Name:       name,
		Layout:     &layout,
		PanelCount: panelCount,
		CreatedAt:  created,
		UpdatedAt:  updated,
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
