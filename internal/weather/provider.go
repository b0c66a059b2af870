package weather

import "context"

// Provider abstracts the upstream weather data source. Implementations
// return fetched records in provider response order, unmodified. Transport
// failures, non-2xx statuses, and undecodable bodies all surface as a single
// opaque error; callers only need to know the fetch produced no usable data.
type Provider interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Store is the contract the in-memory store (and any future persistent
// store) must satisfy. Replace and Snapshot are atomic with respect to each
// other: a snapshot is always the complete argument of some prior Replace,
// or the initial empty sequence.
type Store interface {
	Replace(records []Record)
	Snapshot() []Record
}
