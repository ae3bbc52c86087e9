// Package services contains domain services for the canteen ordering
// system. Domain services implement business logic that does not
// naturally belong to a single aggregate.
//
// The package includes:
//   - PublicIDAllocator: collision-free allocation of short public order tokens
//
// Domain services are stateless, depend only on domain model types and
// narrow port interfaces, and are safe for concurrent use.
package services
