// Package delivery provides the Delivery aggregate, the physical transfer record
// created when a claim is accepted.
//
// Status moves Scheduled -> OutForDelivery -> Delivered, forward only. Skipping is
// allowed (Scheduled -> Delivered covers self pickup); staying in place or going
// back is not. Delivered is terminal and the record is immutable afterwards.
// Live position and ETA can only be reported while the food is OutForDelivery.
package delivery
