// Package postgres holds the ent schema definitions. The client code under
// ./ent is produced by go generate and is not committed.
package postgres

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/upsert --target ./ent ./schema
