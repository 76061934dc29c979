package ecomload_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

func TestDefaultSources_Order(t *testing.T) {
	got := ecomload.DefaultSources()

	want := []ecomload.Source{
		{File: "customers.csv", Table: "customers"},
		{File: "products.csv", Table: "products"},
		{File: "orders.csv", Table: "orders"},
		{File: "order_items.csv", Table: "order_items"},
		{File: "payments.csv", Table: "payments"},
	}
	assert.Equal(t, want, got)
}

func TestDefaultSources_ReturnsFreshSlice(t *testing.T) {
	first := ecomload.DefaultSources()
	first[0].Table = "mutated"

	assert.Equal(t, "customers", ecomload.DefaultSources()[0].Table)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := ecomload.Config{}.WithDefaults()

	assert.Equal(t, ecomload.DefaultDataDir, cfg.DataDir)
	assert.Equal(t, ecomload.DefaultDBPath, cfg.DBPath)
	assert.Equal(t, ecomload.DefaultSources(), cfg.Sources)
	assert.Equal(t, ecomload.DefaultBatchSize, cfg.BatchSize)
}

func TestConfig_WithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := ecomload.Config{DataDir: "in", DBPath: "out.db", BatchSize: 7}.WithDefaults()

	assert.Equal(t, "in", cfg.DataDir)
	assert.Equal(t, "out.db", cfg.DBPath)
	assert.Equal(t, 7, cfg.BatchSize)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  ecomload.Config
		wantErr bool
	}{
		{
			name:   "valid defaults",
			config: ecomload.Config{}.WithDefaults(),
		},
		{
			name:    "missing data dir",
			config:  ecomload.Config{DBPath: "x.db"},
			wantErr: true,
		},
		{
			name:    "missing db path",
			config:  ecomload.Config{DataDir: "data"},
			wantErr: true,
		},
		{
			name:    "negative batch size",
			config:  ecomload.Config{DataDir: "data", DBPath: "x.db", BatchSize: -1},
			wantErr: true,
		},
		{
			name: "source with nested path",
			config: ecomload.Config{DataDir: "data", DBPath: "x.db", Sources: []ecomload.Source{
				{File: "sub/customers.csv", Table: "customers"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate table",
			config: ecomload.Config{DataDir: "data", DBPath: "x.db", Sources: []ecomload.Source{
				{File: "a.csv", Table: "customers"},
				{File: "b.csv", Table: "customers"},
			}},
			wantErr: true,
		},
		{
			name: "source without table",
			config: ecomload.Config{DataDir: "data", DBPath: "x.db", Sources: []ecomload.Source{
				{File: "a.csv"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ecomload.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestFrame_Records(t *testing.T) {
	frame := &ecomload.Frame{
		Columns: []string{"customer_id", "name"},
		Kinds:   []ecomload.ColumnKind{ecomload.KindInteger, ecomload.KindText},
		Rows: [][]any{
			{int64(1), "Jane Doe"},
			{int64(2), nil},
		},
	}

	records := frame.Records()

	require.Len(t, records, 2)
	assert.Equal(t, map[string]any{"customer_id": int64(1), "name": "Jane Doe"}, records[0])
	assert.Equal(t, map[string]any{"customer_id": int64(2), "name": nil}, records[1])
}

func TestFrame_Len_Nil(t *testing.T) {
	var frame *ecomload.Frame
	assert.Equal(t, 0, frame.Len())
}

func TestSummary_TotalRows(t *testing.T) {
	s := ecomload.Summary{Tables: []ecomload.TableResult{{Rows: 3}, {Rows: 4}, {Rows: 0}}}
	assert.Equal(t, int64(7), s.TotalRows())
}

func TestColumnKind_String(t *testing.T) {
	assert.Equal(t, "integer", ecomload.KindInteger.String())
	assert.Equal(t, "real", ecomload.KindReal.String())
	assert.Equal(t, "text", ecomload.KindText.String())
	assert.Equal(t, "boolean", ecomload.KindBool.String())
}
