// Package kernel contains shared value objects used across all domain models.
// It currently provides the UUID identifier value object that every aggregate
// in the system uses as its primary key.
package kernel
