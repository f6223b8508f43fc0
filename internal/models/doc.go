// Package models defines the core domain models for the event-planning
// package engine.
//
// # Model Groups
//
//   - Reference data: EventType, ServiceCategory — immutable lookup
//     tables the user picks from, never mutates.
//   - Catalog data: Vendor, VendorCard, Review — read-only records
//     fetched from storage; the engine never writes them.
//   - Session data: EventDetails, PackageItem, EventPackage,
//     RecommendationFilters, VendorRecommendation, WizardStep — the
//     mutable working state of one planning session, owned by
//     planner.Session.
//
// # Money
//
// All amounts are int64 in whole rupees (the marketplace formats prices
// with zero decimal places). Integer arithmetic keeps the pricing
// formulas exact: floor(subtotal * rate) is plain integer division.
//
// # Design Principles
//
//  1. Plain structs, no behavior: all computation lives in the
//     calculator and planner packages.
//  2. ID strings instead of pointers for cross-references, so every
//     model serializes cleanly into the session snapshot.
//  3. Defaults live next to the types they construct, so the planner
//     can rebuild a canonical initial state from this package alone.
package models
