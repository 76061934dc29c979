package schema

import (
	"fmt"
	"strings"
)

// Type is a SQLite column type affinity.
type Type string

const (
	Integer Type = "INTEGER"
	Real    Type = "REAL"
	Text    Type = "TEXT"
)

// Column declares one table column.
type Column struct {
	Name       string
	Type       Type
	PrimaryKey bool
	NotNull    bool
}

func (c Column) definition() string {
	def := c.Name + " " + string(c.Type)
	switch {
	case c.PrimaryKey:
		def += " PRIMARY KEY"
	case c.NotNull:
		def += " NOT NULL"
	}
	return def
}

// Table declares a table and its columns in declaration order.
type Table struct {
	Name    string
	Columns []Column
}

// CreateStatement returns the DDL for t. It is a no-op against a database
// where the table already exists.
func (t Table) CreateStatement() string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = "    " + c.definition()
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", t.Name, strings.Join(defs, ",\n"))
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKey returns the primary key column name, or "" if none is declared.
func (t Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

func pk(name string) Column { return Column{Name: name, Type: Integer, PrimaryKey: true} }
func req(name string, t Type) Column { return Column{Name: name, Type: t, NotNull: true} }

var registry = []Table{
	{
		Name: "customers",
		Columns: []Column{
			pk("customer_id"),
			req("name", Text),
			req("email", Text),
			req("country", Text),
		},
	},
	{
		Name: "products",
		Columns: []Column{
			pk("product_id"),
			req("name", Text),
			req("category", Text),
			req("price", Real),
		},
	},
	{
		Name: "orders",
		Columns: []Column{
			pk("order_id"),
			req("customer_id", Integer),
			req("order_date", Text),
			req("total_amount", Real),
		},
	},
	{
		Name: "order_items",
		Columns: []Column{
			pk("order_item_id"),
			req("order_id", Integer),
			req("product_id", Integer),
			req("quantity", Integer),
		},
	},
	{
		Name: "payments",
		Columns: []Column{
			pk("payment_id"),
			req("order_id", Integer),
			req("payment_method", Text),
			req("payment_status", Text),
		},
	},
}

// Tables returns every registered table in registry order.
// The returned slice is a copy; callers may modify it.
func Tables() []Table {
	out := make([]Table, len(registry))
	for i, t := range registry {
		cols := make([]Column, len(t.Columns))
		copy(cols, t.Columns)
		out[i] = Table{Name: t.Name, Columns: cols}
	}
	return out
}

// Lookup returns the table registered under name.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Statements returns the creation statement of every table in registry order.
func Statements() []string {
	tables := Tables()
	stmts := make([]string, len(tables))
	for i, t := range tables {
		stmts[i] = t.CreateStatement()
	}
	return stmts
}
