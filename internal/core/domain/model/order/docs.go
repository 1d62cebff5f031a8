// Package order implements the Order aggregate of the fulfillment workflow.
//
// The aggregate owns its lines and its lifecycle status. Status is a state
// machine that only moves forward: New, Assembly, then either the courier
// sub-path (ReadyForPickup, Delivering, Delivered) or the taxi sub-path
// (AwaitingTaxiLink, Delivered), with Canceled reachable from any
// non-terminal state. Every illegal move is reported as a typed
// InvalidTransition error and leaves the aggregate untouched.
//
// The replacement sub-flow is orthogonal to status: a warehouse actor flags
// a line as unavailable, a manager records the substitute, and the flag is
// retained afterwards as a history marker.
package order
