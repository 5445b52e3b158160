package data

import (
	"math"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const linksTableName = "links"

// Column names of the links table.
const (
	columnID          = "id"
	columnCode        = "code"
	columnTargetURL   = "target_url"
	columnTotalClicks = "total_clicks"
	columnLastClicked = "last_clicked"
	columnCreatedAt   = "created_at"
	columnUpdatedAt   = "updated_at"
)

// linkColumns is the projection every link query returns, in scan order.
var linkColumns = []string{
	columnID,
	columnCode,
	columnTargetURL,
	columnTotalClicks,
	columnLastClicked,
	columnCreatedAt,
	columnUpdatedAt,
}

var (
	// LinksColumns holds the columns for the "links" table.
	LinksColumns = []*schema.Column{
		{Name: columnID, Type: field.TypeInt64, Increment: true},
		{Name: columnCode, Type: field.TypeString, Unique: true},
		{Name: columnTargetURL, Type: field.TypeString, Size: math.MaxInt32},
		{Name: columnTotalClicks, Type: field.TypeInt64, Default: 0},
		{Name: columnLastClicked, Type: field.TypeTime, Nullable: true},
		{Name: columnCreatedAt, Type: field.TypeTime},
		{Name: columnUpdatedAt, Type: field.TypeTime},
	}
	// LinksTable holds the schema information for the "links" table.
	LinksTable = &schema.Table{
		Name:       linksTableName,
		Columns:    LinksColumns,
		PrimaryKey: []*schema.Column{LinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "link_created_at",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LinksTable,
	}
)
