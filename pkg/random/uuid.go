package random

import "github.com/google/uuid"

// UUID returns a version 4 UUID drawn from src, so a seeded Source yields
// a reproducible sequence.
func UUID(src *Source) uuid.UUID {
	// Read on a Source cannot fail.
	return uuid.Must(uuid.NewRandomFromReader(src))
}
