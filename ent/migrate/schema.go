// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString, Nullable: true},
		{Name: "module_id", Type: field.TypeString, Nullable: true},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3]},
			},
			{
				Name:    "activityevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4]},
			},
		},
	}
	// ProgressDocsColumns holds the columns for the "progress_docs" table.
	ProgressDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressDocsTable holds the schema information for the "progress_docs" table.
	ProgressDocsTable = &schema.Table{
		Name:       "progress_docs",
		Columns:    ProgressDocsColumns,
		PrimaryKey: []*schema.Column{ProgressDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressdoc_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressDocsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		ProgressDocsTable,
	}
)

func init() {
}
