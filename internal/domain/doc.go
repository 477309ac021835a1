// Package domain contains the entities the BFF aggregates for its clients:
// users, exams, and exam registrations. It also holds the sentinel errors
// and validation types shared across the application and adapter layers.
// The domain has no knowledge of HTTP or of the upstream services' wire
// formats; adapters translate in both directions.
package domain
