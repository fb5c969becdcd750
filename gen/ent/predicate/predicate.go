// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DocSequence is the predicate function for docsequence builders.
type DocSequence func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)
