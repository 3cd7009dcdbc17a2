// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/querra-ai/querra/ent/cacheentry"
	"github.com/querra-ai/querra/ent/checkpoint"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/querypair"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cacheentryFields := schema.CacheEntry{}.Fields()
	_ = cacheentryFields
	// cacheentryDescCreatedAt is the schema descriptor for created_at field.
	cacheentryDescCreatedAt := cacheentryFields[7].Descriptor()
	// cacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	cacheentry.DefaultCreatedAt = cacheentryDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[3].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescCreatedAt is the schema descriptor for created_at field.
	interactionDescCreatedAt := interactionFields[10].Descriptor()
	// interaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	interaction.DefaultCreatedAt = interactionDescCreatedAt.Default.(func() time.Time)
	// interactionDescUpdatedAt is the schema descriptor for updated_at field.
	interactionDescUpdatedAt := interactionFields[11].Descriptor()
	// interaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interaction.DefaultUpdatedAt = interactionDescUpdatedAt.Default.(func() time.Time)
	// interaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interaction.UpdateDefaultUpdatedAt = interactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	querypairFields := schema.QueryPair{}.Fields()
	_ = querypairFields
	// querypairDescCreatedAt is the schema descriptor for created_at field.
	querypairDescCreatedAt := querypairFields[10].Descriptor()
	// querypair.DefaultCreatedAt holds the default value on creation for the created_at field.
	querypair.DefaultCreatedAt = querypairDescCreatedAt.Default.(func() time.Time)
	// querypairDescUpdatedAt is the schema descriptor for updated_at field.
	querypairDescUpdatedAt := querypairFields[11].Descriptor()
	// querypair.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	querypair.DefaultUpdatedAt = querypairDescUpdatedAt.Default.(func() time.Time)
	// querypair.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	querypair.UpdateDefaultUpdatedAt = querypairDescUpdatedAt.UpdateDefault.(func() time.Time)
	querysessionFields := schema.QuerySession{}.Fields()
	_ = querysessionFields
	// querysessionDescRequeueCount is the schema descriptor for requeue_count field.
	querysessionDescRequeueCount := querysessionFields[12].Descriptor()
	// querysession.DefaultRequeueCount holds the default value on creation for the requeue_count field.
	querysession.DefaultRequeueCount = querysessionDescRequeueCount.Default.(int)
	// querysessionDescCreatedAt is the schema descriptor for created_at field.
	querysessionDescCreatedAt := querysessionFields[18].Descriptor()
	// querysession.DefaultCreatedAt holds the default value on creation for the created_at field.
	querysession.DefaultCreatedAt = querysessionDescCreatedAt.Default.(func() time.Time)
}
