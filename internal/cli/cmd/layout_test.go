package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/layoutfile"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		in      string
		want    entity.Rect
		wantErr bool
	}{
		{in: "100,100,400,300", want: entity.NewRect(100, 100, 400, 300)},
		{in: " 10.5, 20 ,30,40 ", want: entity.NewRect(10.5, 20, 30, 40)},
		{in: "1,2,3", wantErr: true},
		{in: "a,2,3,4", wantErr: true},
		{in: "0,0,0,10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFrame(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDrop(t *testing.T) {
	tree := entity.DefaultLayoutTree()

	leaf, zone, err := resolveDrop(tree, "Inspector", "BOTTOM")
	require.NoError(t, err)
	want, _ := tree.FindLeafContaining(entity.PanelInspector)
	assert.Equal(t, want, leaf)
	assert.Equal(t, entity.DropBottom, zone)

	_, _, err = resolveDrop(tree, "Console", "left")
	assert.ErrorIs(t, err, entity.ErrInvalidOperation)

	_, _, err = resolveDrop(tree, "Inspector", "diagonal")
	assert.Error(t, err)
}

func TestValidateFiles_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	good := filepath.Join(dir, "good.yaml")
	store, err := layoutfile.NewOSStore(good)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, entity.ToPersisted(entity.DefaultLayoutTree())))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version": 1, "nodes": [`), 0o644))

	missing := filepath.Join(dir, "missing.toml")
	unsupported := filepath.Join(dir, "layout.ini")

	results := validateFiles(ctx, []string{good, bad, missing, unsupported})
	require.Len(t, results, 4)

	assert.Equal(t, good, results[0].Path)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 3, results[0].Panels)

	for _, r := range results[1:] {
		assert.Error(t, r.Err, r.Path)
	}
	assert.Equal(t, unsupported, results[3].Path)
}
