// Package courier implements the courier roster entry.
// Couriers are notified when orders become ready for pickup and are the
// acting party of route acceptance and delivery completion. Their live
// position is never persisted; it arrives with each planning request.
package courier
