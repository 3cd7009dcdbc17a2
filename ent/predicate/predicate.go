// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CacheEntry is the predicate function for cacheentry builders.
type CacheEntry func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// QueryPair is the predicate function for querypair builders.
type QueryPair func(*sql.Selector)

// QuerySession is the predicate function for querysession builders.
type QuerySession func(*sql.Selector)
