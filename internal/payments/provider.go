package payments

import (
	"context"
)

// LineItem is one priced entry of a checkout session. UnitAmount is in
// minor currency units.
type LineItem struct {
	Name        string
	Description string
	Currency    string
	UnitAmount  int64
}

type SessionParams struct {
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	LineItems         []LineItem
	Metadata          map[string]string
}

type Session struct {
	ID  string
	URL string
}

// Provider creates hosted checkout sessions. It is injected into the
// checkout handler so tests can substitute a fake; a nil provider means
// payments are not configured.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, params *SessionParams) (*Session, error)
}
