package services_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/internal/schema"
	testhelpers "github.com/vvka-141/ecomload/internal/testing"
	"github.com/vvka-141/ecomload/internal/testing/fixtures"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

var allTables = []string{"customers", "products", "orders", "order_items", "payments"}

func newProject(t *testing.T, data map[string]string, skip ...string) ecomload.Config {
	t.Helper()
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	fixtures.WriteDataset(t, dataDir, data, skip...)
	return ecomload.Config{DataDir: dataDir, DBPath: filepath.Join(root, "ecommerce.db")}
}

func TestLoadService_Run_RowCountsMatchSources(t *testing.T) {
	testhelpers.SkipIfShort(t)
	cfg := newProject(t, fixtures.Dataset)

	summary, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.NoError(t, err)

	want := fixtures.RowCounts(fixtures.Dataset)
	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	assert.Equal(t, want, testhelpers.CountRows(t, session, allTables...))

	for _, result := range summary.Tables {
		assert.Equal(t, want[result.Source.Table], result.Rows, result.Source.Table)
	}
}

func TestLoadService_Run_SecondRunAppendsAgain(t *testing.T) {
	testhelpers.SkipIfShort(t)
	cfg := newProject(t, fixtures.Keyless)
	loader := testhelpers.NewTestLoader(t)

	_, err := loader.Run(context.Background(), cfg)
	require.NoError(t, err)
	_, err = loader.Run(context.Background(), cfg)
	require.NoError(t, err)

	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	counts := testhelpers.CountRows(t, session, allTables...)
	for table, n := range fixtures.RowCounts(fixtures.Keyless) {
		assert.Equal(t, 2*n, counts[table], table)
	}
}

func TestLoadService_Run_SecondRunWithExplicitKeysFails(t *testing.T) {
	testhelpers.SkipIfShort(t)
	cfg := newProject(t, fixtures.Dataset)
	loader := testhelpers.NewTestLoader(t)

	_, err := loader.Run(context.Background(), cfg)
	require.NoError(t, err)

	_, err = loader.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecomload.ErrLoadFailed)
	assert.Contains(t, err.Error(), "customers")

	// The rejected batch is rolled back; the first run's rows are untouched.
	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	assert.Equal(t, fixtures.RowCounts(fixtures.Dataset), testhelpers.CountRows(t, session, allTables...))
}

func TestLoadService_Run_MissingDirectoryCreatesNoDatabase(t *testing.T) {
	testhelpers.SkipIfShort(t)
	root := t.TempDir()
	cfg := ecomload.Config{
		DataDir: filepath.Join(root, "missing"),
		DBPath:  filepath.Join(root, "ecommerce.db"),
	}

	_, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecomload.ErrMissingDirectory)

	_, statErr := os.Stat(cfg.DBPath)
	assert.True(t, os.IsNotExist(statErr), "database file must not be created")
}

func TestLoadService_Run_MissingFileKeepsEarlierTables(t *testing.T) {
	testhelpers.SkipIfShort(t)
	cfg := newProject(t, fixtures.Dataset, "orders.csv")

	_, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecomload.ErrMissingFile)
	assert.Contains(t, err.Error(), "orders.csv")

	want := fixtures.RowCounts(fixtures.Dataset)
	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	counts := testhelpers.CountRows(t, session, allTables...)
	assert.Equal(t, want["customers"], counts["customers"])
	assert.Equal(t, want["products"], counts["products"])
	assert.Zero(t, counts["orders"])
	assert.Zero(t, counts["order_items"])
	assert.Zero(t, counts["payments"])
}

func TestLoadService_Run_SchemaIsIdempotent(t *testing.T) {
	testhelpers.SkipIfShort(t)
	cfg := newProject(t, fixtures.Keyless)
	loader := testhelpers.NewTestLoader(t)

	for i := 0; i < 3; i++ {
		_, err := loader.Run(context.Background(), cfg)
		require.NoError(t, err, "run %d", i+1)
	}

	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	tables, err := session.DB().Migrator().GetTables()
	require.NoError(t, err)
	assert.ElementsMatch(t, allTables, tables)
}

func TestLoadService_Run_ValuesMatchSource(t *testing.T) {
	testhelpers.SkipIfShort(t)
	cfg := newProject(t, fixtures.Dataset)

	_, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.NoError(t, err)

	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)

	type customer struct {
		CustomerID int64
		Name       string
		Email      string
		Country    string
	}
	var first customer
	require.NoError(t, session.DB().Table("customers").Where("customer_id = ?", 1).Take(&first).Error)
	assert.Equal(t, customer{CustomerID: 1, Name: "Jane Doe", Email: "jane@x.com", Country: "US"}, first)

	var price float64
	require.NoError(t, session.DB().Table("products").Select("price").Where("product_id = ?", 10).Scan(&price).Error)
	assert.InDelta(t, 24.5, price, 1e-9)

	var ids []int64
	require.NoError(t, session.DB().Table("order_items").Order("rowid").Pluck("order_item_id", &ids).Error)
	assert.Equal(t, []int64{1000, 1001, 1002}, ids)
}

func TestLoadService_Run_ColumnsMappedByName(t *testing.T) {
	testhelpers.SkipIfShort(t)
	data := map[string]string{}
	for k, v := range fixtures.Dataset {
		data[k] = v
	}
	data["customers.csv"] = "country,email,name,customer_id\nUS,jane@x.com,Jane Doe,1\n"
	cfg := newProject(t, data)

	_, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.NoError(t, err)

	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	var name, country string
	row := session.DB().Raw("SELECT name, country FROM customers WHERE customer_id = 1").Row()
	require.NoError(t, row.Scan(&name, &country))
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "US", country)
}

func TestLoadService_Run_HeaderOnlyFileAppendsNothing(t *testing.T) {
	testhelpers.SkipIfShort(t)
	data := map[string]string{}
	for k, v := range fixtures.Dataset {
		data[k] = v
	}
	data["payments.csv"] = "payment_id,order_id,payment_method,payment_status\n"
	cfg := newProject(t, data)

	summary, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Tables[4].Rows)

	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	assert.Zero(t, testhelpers.CountRows(t, session, "payments")["payments"])
}

func TestLoadService_Run_EmptyRequiredCellIsLoadFailure(t *testing.T) {
	testhelpers.SkipIfShort(t)
	data := map[string]string{}
	for k, v := range fixtures.Dataset {
		data[k] = v
	}
	data["products.csv"] = "product_id,name,category,price\n10,Desk Lamp,,24.5\n"
	cfg := newProject(t, data)

	_, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecomload.ErrLoadFailed)
	assert.Contains(t, err.Error(), "products")
}

func TestLoadService_Run_InMemorySources(t *testing.T) {
	testhelpers.SkipIfShort(t)
	mfs := filesystem.NewMemoryFileSystem("/project")
	fixtures.AddDataset(mfs, "/project/data", fixtures.Dataset)
	dbPath := filepath.Join(t.TempDir(), "mem.db")

	_, err := testhelpers.NewTestLoaderWithFS(t, mfs).Run(context.Background(), ecomload.Config{
		DataDir: "/project/data",
		DBPath:  dbPath,
	})
	require.NoError(t, err)

	session := testhelpers.OpenTestDatabase(t, dbPath)
	assert.Equal(t, fixtures.RowCounts(fixtures.Dataset), testhelpers.CountRows(t, session, allTables...))
	assert.Len(t, schema.Tables(), len(allTables))
}

func TestLoadService_Run_LargeBatchSize(t *testing.T) {
	testhelpers.SkipIfShort(t)
	data := map[string]string{}
	for k, v := range fixtures.Dataset {
		data[k] = v
	}
	var b strings.Builder
	b.WriteString("customer_id,name,email,country\n")
	for id := 1; id <= 10000; id++ {
		fmt.Fprintf(&b, "%d,Customer %d,c%d@example.com,US\n", id, id, id)
	}
	data["customers.csv"] = b.String()
	cfg := newProject(t, data)
	cfg.BatchSize = 10000

	summary, err := testhelpers.NewTestLoader(t).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), summary.Tables[0].Rows)

	session := testhelpers.OpenTestDatabase(t, cfg.DBPath)
	assert.Equal(t, int64(10000), testhelpers.CountRows(t, session, "customers")["customers"])
}
