package weather

// Record is a single forecast entry as returned by the upstream provider.
// Field names are served verbatim; temperature stays in the provider's
// native unit. The id is only unique within one fetch batch.
type Record struct {
	ID          uint64  `json:"id"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
}
