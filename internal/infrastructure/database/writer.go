package database

import (
	"context"

	"foodimages/internal/domain/model"
)

// LookupWriter appends lookups to the journal collection.
type LookupWriter struct {
	db *Database
}

func NewLookupWriter(db *Database) *LookupWriter {
	return &LookupWriter{db: db}
}

func (w *LookupWriter) Write(ctx context.Context, lookup *model.Lookup) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(LookupCollection)

	_, err := coll.InsertOne(ctx, lookup)

	return err
}
