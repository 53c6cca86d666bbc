// Package kernel contains shared value objects used across all domain models.
// It currently provides the UUID identity type that every aggregate in the
// laundry system uses for its primary key.
package kernel
