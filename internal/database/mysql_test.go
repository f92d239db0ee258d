package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markschellhas/chic/pkg/config"
)

var mysqlColumns = []string{"Field", "Type", "Null", "Key", "Default", "Extra"}

func TestMySQL_Extract(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SHOW TABLES`).
		WillReturnRows(sqlmock.NewRows([]string{"Tables_in_shop"}).AddRow("products").AddRow("order_items"))
	mock.ExpectQuery("SHOW COLUMNS FROM `products`").
		WillReturnRows(sqlmock.NewRows(mysqlColumns).
			AddRow("id", "int", "NO", "PRI", nil, "auto_increment").
			AddRow("name", "varchar(120)", "NO", "", nil, "").
			AddRow("in_stock", "tinyint(1)", "YES", "", "1", "").
			AddRow("added_on", "datetime", "YES", "", "CURRENT_TIMESTAMP", "DEFAULT_GENERATED"))
	mock.ExpectQuery("SHOW COLUMNS FROM `order_items`").
		WillReturnRows(sqlmock.NewRows(mysqlColumns).
			AddRow("order_id", "int", "NO", "PRI", nil, "").
			AddRow("product_id", "int", "NO", "PRI", nil, ""))

	snap, err := Extract(context.Background(), config.DialectMySQL, NewMySQLIntrospector(db), Filter{}, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tables, 2)

	products := snap.Tables[0]
	assert.Equal(t, "products", products.Name)
	require.Len(t, products.Columns, 4)

	id := products.Columns[0]
	assert.True(t, id.IsPrimaryKey)
	assert.True(t, id.IsAutoIncrement)
	assert.True(t, id.IsNotNull)
	assert.Nil(t, id.DefaultValue)

	inStock := products.Columns[2]
	assert.Equal(t, "tinyint(1)", inStock.NativeType)
	assert.False(t, inStock.IsNotNull)
	require.NotNil(t, inStock.DefaultValue)
	assert.Equal(t, "1", *inStock.DefaultValue)

	assert.False(t, products.Columns[3].IsAutoIncrement)

	items := snap.Tables[1]
	assert.True(t, items.Columns[0].IsPrimaryKey)
	assert.True(t, items.Columns[1].IsPrimaryKey)
	assert.False(t, items.Columns[0].IsAutoIncrement)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQL_ColumnFailureAbortsPass(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SHOW TABLES`).
		WillReturnRows(sqlmock.NewRows([]string{"Tables_in_shop"}).AddRow("products").AddRow("orders"))
	mock.ExpectQuery("SHOW COLUMNS FROM `products`").
		WillReturnRows(sqlmock.NewRows(mysqlColumns).AddRow("id", "int", "NO", "PRI", nil, "auto_increment"))
	mock.ExpectQuery("SHOW COLUMNS FROM `orders`").
		WillReturnError(errors.New("table is locked"))

	snap, err := Extract(context.Background(), config.DialectMySQL, NewMySQLIntrospector(db), Filter{}, nil)
	require.Error(t, err)
	assert.Nil(t, snap)

	var introErr *IntrospectionError
	require.True(t, errors.As(err, &introErr))
	assert.Equal(t, "orders", introErr.Table)
	assert.Contains(t, err.Error(), "table is locked")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQL_TableListFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SHOW TABLES`).WillReturnError(errors.New("access denied"))

	_, err = Extract(context.Background(), config.DialectMySQL, NewMySQLIntrospector(db), Filter{}, nil)

	var introErr *IntrospectionError
	require.True(t, errors.As(err, &introErr))
	assert.Empty(t, introErr.Table)
}

func TestQuoteMySQLIdentifier(t *testing.T) {
	assert.Equal(t, "`posts`", quoteMySQLIdentifier("posts"))
	assert.Equal(t, "`we``ird`", quoteMySQLIdentifier("we`ird"))
}
