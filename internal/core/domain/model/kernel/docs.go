// Package kernel contains shared value objects used across the domain model.
//
// Money wraps a decimal amount for prices and totals; OrderID and its generator
// provide collision-proof, time-orderable identity for submitted orders. Both
// types are immutable value objects constructed through factory functions.
package kernel
