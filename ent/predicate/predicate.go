// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// ProgressDoc is the predicate function for progressdoc builders.
type ProgressDoc func(*sql.Selector)
