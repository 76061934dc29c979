// Package fixtures provides a small, consistent e-commerce dataset for tests.
package fixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/internal/files/filesystem"
)

// Dataset maps each source file name to its CSV content. Every file carries
// explicit primary keys.
var Dataset = map[string]string{
	"customers.csv": `customer_id,name,email,country
1,Jane Doe,jane@x.com,US
2,Ravi Patel,ravi@example.com,IN
3,Lena Fischer,lena@example.de,DE
`,
	"products.csv": `product_id,name,category,price
10,Desk Lamp,Home,24.5
11,Notebook,Stationery,3.99
`,
	"orders.csv": `order_id,customer_id,order_date,total_amount
100,1,2024-01-05,28.49
101,2,2024-01-06,3.99
`,
	"order_items.csv": `order_item_id,order_id,product_id,quantity
1000,100,10,1
1001,100,11,1
1002,101,11,1
`,
	"payments.csv": `payment_id,order_id,payment_method,payment_status
500,100,card,paid
501,101,paypal,pending
`,
}

// Keyless is Dataset without the primary key columns, so every append gets
// fresh rowids and repeated loads add the same rows again.
var Keyless = map[string]string{
	"customers.csv": `name,email,country
Jane Doe,jane@x.com,US
Ravi Patel,ravi@example.com,IN
Lena Fischer,lena@example.de,DE
`,
	"products.csv": `name,category,price
Desk Lamp,Home,24.5
Notebook,Stationery,3.99
`,
	"orders.csv": `customer_id,order_date,total_amount
1,2024-01-05,28.49
2,2024-01-06,3.99
`,
	"order_items.csv": `order_id,product_id,quantity
100,10,1
100,11,1
101,11,1
`,
	"payments.csv": `order_id,payment_method,payment_status
100,card,paid
101,paypal,pending
`,
}

// TableFor maps source file names to their tables.
var TableFor = map[string]string{
	"customers.csv":   "customers",
	"products.csv":    "products",
	"orders.csv":      "orders",
	"order_items.csv": "order_items",
	"payments.csv":    "payments",
}

// RowCounts returns the number of data rows per table in data.
func RowCounts(data map[string]string) map[string]int64 {
	counts := make(map[string]int64, len(data))
	for file, content := range data {
		lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
		counts[TableFor[file]] = int64(len(lines) - 1)
	}
	return counts
}

// WriteDataset writes data into dir on disk, skipping the named files.
func WriteDataset(t testing.TB, dir string, data map[string]string, skip ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for file, content := range data {
		if contains(skip, file) {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
	}
}

// AddDataset adds data under dir to an in-memory filesystem, skipping the named files.
func AddDataset(mfs *filesystem.MemoryFileSystem, dir string, data map[string]string, skip ...string) {
	mfs.AddDir(dir)
	for file, content := range data {
		if contains(skip, file) {
			continue
		}
		mfs.AddFile(filepath.Join(dir, file), content)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
