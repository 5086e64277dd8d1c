// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Consultation is the predicate function for consultation builders.
type Consultation func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// Recording is the predicate function for recording builders.
type Recording func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Transcription is the predicate function for transcription builders.
type Transcription func(*sql.Selector)
