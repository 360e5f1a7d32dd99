package repository

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateProposalReference produces a human-readable proposal code such
// as "AQ-2026-48215". Uniqueness is enforced by the database index; on a
// collision the caller simply generates another.
func GenerateProposalReference() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	number := rng.Intn(90000) + 10000
	return fmt.Sprintf("AQ-%d-%05d", time.Now().Year(), number)
}
