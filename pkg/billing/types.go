// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import "fmt"

type EventKind string

const (
	EventCheckoutCompleted    EventKind = "checkout.completed"
	EventInvoicePaid          EventKind = "invoice.paid"
	EventInvoicePaymentFailed EventKind = "invoice.payment_failed"
	EventSubscriptionDeleted  EventKind = "subscription.deleted"
)

// PaymentEvent is the tagged union delivered by the payment provider
// glue. The upstream payload is an untyped bag; only the fields the sink
// acts on survive decoding, everything else is dropped.
type PaymentEvent struct {
	Kind             EventKind `json:"kind"`
	OrganizationID   string    `json:"organizationId"`
	Plan             string    `json:"plan,omitempty"`
	StripeCustomerID string    `json:"stripeCustomerId,omitempty"`
}

// Validate fails closed: unknown kinds and missing identifiers are
// rejected at the boundary, they never reach the core.
func (e *PaymentEvent) Validate() error {
	switch e.Kind {
	case EventCheckoutCompleted, EventInvoicePaid, EventInvoicePaymentFailed, EventSubscriptionDeleted:
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
	if e.OrganizationID == "" {
		return fmt.Errorf("organizationId is required")
	}
	return nil
}
