// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fluentpath/fluentpath/ent/activityevent"
	"github.com/fluentpath/fluentpath/ent/progressdoc"
	"github.com/fluentpath/fluentpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[0].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[1].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	progressdocFields := schema.ProgressDoc{}.Fields()
	_ = progressdocFields
	// progressdocDescUserID is the schema descriptor for user_id field.
	progressdocDescUserID := progressdocFields[0].Descriptor()
	// progressdoc.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressdoc.UserIDValidator = progressdocDescUserID.Validators[0].(func(string) error)
	// progressdocDescUpdatedAt is the schema descriptor for updated_at field.
	progressdocDescUpdatedAt := progressdocFields[2].Descriptor()
	// progressdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressdoc.DefaultUpdatedAt = progressdocDescUpdatedAt.Default.(func() time.Time)
	// progressdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressdoc.UpdateDefaultUpdatedAt = progressdocDescUpdatedAt.UpdateDefault.(func() time.Time)
}
