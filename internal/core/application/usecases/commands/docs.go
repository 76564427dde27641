// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: placing and cancelling
// orders, advancing the fulfillment lifecycle, and registering customers.
// All commands follow a consistent pattern: constructor validation, business
// rule checks in a defined order, then persistence through the ports.
package commands
