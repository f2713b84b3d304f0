package model

import "time"

// Lookup is one resolved image request as stored in the lookup journal.
type Lookup struct {
	ID          string    `bson:"_id"`
	ItemName    string    `bson:"item_name"`
	BlobName    string    `bson:"blob_name"`
	Container   string    `bson:"container"`
	Found       bool      `bson:"found"`
	RequestedAt time.Time `bson:"requested_at"`
}
