package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const webhookMaxBodyBytes = 65536

// HandleStripeWebhook is a plain chi handler: signature verification is
// defined over the raw, unparsed body, so huma's typed decoding cannot
// sit in front of it. Unknown event types are acknowledged and ignored.
func (h *CheckoutHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookMaxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	// Stripe sends events pinned to the endpoint's API version, which
	// need not match the SDK's; a version mismatch must not reject a
	// correctly signed delivery.
	event, err := webhook.ConstructEventWithOptions(payload, r.Header.Get("Stripe-Signature"), h.cfg.StripeWebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		msg := "Webhook payload verification failed"
		if errors.Is(err, webhook.ErrNotSigned) || errors.Is(err, webhook.ErrInvalidHeader) ||
			errors.Is(err, webhook.ErrNoValidSignature) || errors.Is(err, webhook.ErrTooOld) {
			msg = "Webhook signature verification failed"
		}
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			http.Error(w, "Failed to parse session", http.StatusBadRequest)
			return
		}
		if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			h.HandleSessionCompleted(&session)
		}
	case stripe.EventTypeCheckoutSessionExpired:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			http.Error(w, "Failed to parse session", http.StatusBadRequest)
			return
		}
		h.HandleSessionExpired(&session)
	default:
		log.Printf("Ignoring stripe event type %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
