package entity

import "time"

type LookupStatus int

const (
	LookupFailed LookupStatus = iota
	LookupInvalid
	LookupNotFound
	LookupFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupInvalid:
		return "invalid"
	case LookupNotFound:
		return "not_found"
	case LookupFound:
		return "found"
	default:
		return "failed"
	}
}

// LookupResult is the outcome of resolving an item name to an image.
// URL and ExpiresAt are set only when Status is LookupFound; Reason only
// when it is LookupInvalid.
type LookupResult struct {
	Status    LookupStatus
	BlobName  string
	URL       string
	ExpiresAt time.Time
	Reason    string
}
