// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order is created in Pending status by the order placement use case and
// then advanced by the lifecycle engine: Pending -> InPreparation -> Ready ->
// Completed. A customer may cancel an order, but only while it is still
// Pending. Completed and Cancelled are terminal.
//
// The aggregate records two one-shot timestamps along the way: readyAt when
// the order becomes Ready and completedAt when it is picked up. All other
// fields are fixed at creation.
package order
