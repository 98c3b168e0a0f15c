package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"company_payments/internal/domain/entities"
	"company_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// eventKind is the closed enumeration of Stripe event families this service
// reacts to. Everything else maps to eventUnrecognized and is acknowledged
// without error, so new gateway event types never break the endpoint.

type eventKind int

const (
	eventUnrecognized eventKind = iota
	eventCheckoutSessionCompleted
	eventCheckoutAsyncPaymentSucceeded
	eventCheckoutAsyncPaymentFailed
	eventPaymentIntentSucceeded
	eventPaymentIntentFailed
)

var eventKindByType = map[string]eventKind{
	"checkout.session.completed":               eventCheckoutSessionCompleted,
	"checkout.session.async_payment_succeeded": eventCheckoutAsyncPaymentSucceeded,
	"checkout.session.async_payment_failed":    eventCheckoutAsyncPaymentFailed,
	"payment_intent.succeeded":                 eventPaymentIntentSucceeded,
	"payment_intent.payment_failed":            eventPaymentIntentFailed,
}

// IStripeWebhookUseCase reconciles one verified Stripe event against the
// payment records: verify -> route -> locate -> transition -> notify.

type IStripeWebhookUseCase interface {
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string) error
}

type StripeWebhookUseCase struct {
	repo     interfaces.ICompanyPaymentRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.IPaymentNotifier
}

var _ IStripeWebhookUseCase = (*StripeWebhookUseCase)(nil)

func NewStripeWebhookUseCase(repo interfaces.ICompanyPaymentRepository, gateway interfaces.IPaymentGateway, notifier interfaces.IPaymentNotifier) *StripeWebhookUseCase {
	return &StripeWebhookUseCase{repo: repo, gateway: gateway, notifier: notifier}
}

// HandleEvent returns interfaces.ErrWebhookNotConfigured / ErrMissingSignature /
// ErrInvalidSignature for the handler to map onto HTTP codes. Malformed
// payloads and unmatched records are logged and acknowledged (nil): Stripe
// must not redeliver them forever.
func (u *StripeWebhookUseCase) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	if u.gateway == nil {
		return interfaces.ErrWebhookNotConfigured
	}

	event, err := u.gateway.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		return err
	}

	log.Printf("[webhook][usecase] received event type=%s id=%s", event.Type, event.ID)

	switch eventKindByType[event.Type] {
	case eventCheckoutSessionCompleted:
		// A session can complete before the payment clears (async methods);
		// only a "paid" session is a success signal.
		return u.handleCheckoutSession(ctx, event, entities.TransactionStatusSuccessful, true)
	case eventCheckoutAsyncPaymentSucceeded:
		return u.handleCheckoutSession(ctx, event, entities.TransactionStatusSuccessful, false)
	case eventCheckoutAsyncPaymentFailed:
		return u.handleCheckoutSession(ctx, event, entities.TransactionStatusFailed, false)
	case eventPaymentIntentSucceeded:
		return u.handlePaymentIntent(ctx, event, entities.TransactionStatusSuccessful)
	case eventPaymentIntentFailed:
		return u.handlePaymentIntent(ctx, event, entities.TransactionStatusFailed)
	default:
		log.Printf("[webhook][usecase] unhandled event type=%s id=%s", event.Type, event.ID)
		return nil
	}
}

// checkoutSessionInfo is the correlation view of a checkout.session.* event.
type checkoutSessionInfo struct {
	sessionID         string
	paymentStatus     string
	paymentIntentID   string
	clientReferenceID string
	metadataPaymentID string
}

// checkoutSessionObject is the typed shape of data.object for checkout
// sessions, as delivered in webhook payloads (ids as plain strings).
type checkoutSessionObject struct {
	ID                string            `json:"id"`
	PaymentStatus     string            `json:"payment_status"`
	PaymentIntent     string            `json:"payment_intent"`
	ClientReferenceID string            `json:"client_reference_id"`
	Metadata          map[string]string `json:"metadata"`
}

type paymentIntentObject struct {
	ID           string `json:"id"`
	LatestCharge string `json:"latest_charge"`
}

func (u *StripeWebhookUseCase) handleCheckoutSession(ctx context.Context, event interfaces.WebhookEvent, target entities.TransactionStatus, requirePaid bool) error {
	info, ok := extractCheckoutSessionInfo(event)
	if !ok {
		log.Printf("[webhook][usecase] malformed checkout session payload type=%s id=%s", event.Type, event.ID)
		return nil
	}

	if requirePaid && !strings.EqualFold(info.paymentStatus, "paid") {
		log.Printf("[webhook][usecase] session not paid yet session_id=%s payment_status=%s", info.sessionID, info.paymentStatus)
		return nil
	}

	p, found, err := u.locate(ctx, info)
	if err != nil {
		return err
	}
	if !found {
		log.Printf("[webhook][usecase] no matching payment session_id=%s payment_intent_id=%s", info.sessionID, info.paymentIntentID)
		return nil
	}

	settlementID := ""
	if target == entities.TransactionStatusSuccessful {
		settlementID = info.paymentIntentID
	}
	return u.applyStatus(ctx, p, target, settlementID)
}

func (u *StripeWebhookUseCase) handlePaymentIntent(ctx context.Context, event interfaces.WebhookEvent, target entities.TransactionStatus) error {
	pi, ok := extractPaymentIntent(event)
	if !ok || pi.ID == "" {
		log.Printf("[webhook][usecase] malformed payment intent payload type=%s id=%s", event.Type, event.ID)
		return nil
	}

	p, err := u.repo.GetByPaymentIntentID(ctx, pi.ID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		log.Printf("[webhook][usecase] no matching payment payment_intent_id=%s", pi.ID)
		return nil
	}

	settlementID := ""
	if target == entities.TransactionStatusSuccessful {
		settlementID = pi.LatestCharge
	}
	return u.applyStatus(ctx, p, target, settlementID)
}

// locate resolves an event to exactly one payment via the fallback chain:
// checkout-session id, then payment-intent id, then client_reference_id as
// the record's own id, then the paymentId metadata set at session creation.
// Stripe's ids are populated progressively across the lifecycle, so no
// single field is reliable for every event; the system-assigned correlation
// ids are the timing-independent fallback.
func (u *StripeWebhookUseCase) locate(ctx context.Context, info checkoutSessionInfo) (entities.CompanyPayment, bool, error) {
	if info.sessionID != "" {
		p, err := u.repo.GetByCheckoutSessionID(ctx, info.sessionID)
		if err != nil {
			return entities.CompanyPayment{}, false, err
		}
		if p.ID != "" {
			return p, true, nil
		}
	}

	if info.paymentIntentID != "" {
		p, err := u.repo.GetByPaymentIntentID(ctx, info.paymentIntentID)
		if err != nil {
			return entities.CompanyPayment{}, false, err
		}
		if p.ID != "" {
			return p, true, nil
		}
	}

	for _, candidate := range []string{info.clientReferenceID, info.metadataPaymentID} {
		if candidate == "" {
			continue
		}
		if _, err := uuid.Parse(candidate); err != nil {
			// Not one of our ids; keep falling through.
			continue
		}
		p, err := u.repo.GetByID(ctx, candidate)
		if err != nil {
			return entities.CompanyPayment{}, false, err
		}
		if p.ID != "" {
			return p, true, nil
		}
	}

	return entities.CompanyPayment{}, false, nil
}

// applyStatus persists the transition as one atomic update and, when the
// stored status actually changed, emits a subscription-paid notification.
// Notification failures are logged and never propagated: the bus and the
// store must not share a failure domain.
func (u *StripeWebhookUseCase) applyStatus(ctx context.Context, p entities.CompanyPayment, target entities.TransactionStatus, settlementID string) error {
	updated, previous, err := u.repo.ApplyStatus(ctx, p.ID, target, settlementID)
	if err != nil {
		log.Printf("[webhook][usecase] apply status failed payment_id=%s target=%s err=%v", p.ID, target, err)
		return err
	}

	if previous == target {
		log.Printf("[webhook][usecase] status unchanged payment_id=%s status=%s", p.ID, target)
		return nil
	}

	log.Printf("[webhook][usecase] status transition payment_id=%s %s->%s", p.ID, previous, target)

	if u.notifier != nil {
		if nerr := u.notifier.SendSubscriptionPaid(ctx, updated.CompanyID, updated.ID, target); nerr != nil {
			log.Printf("[webhook][usecase] notification failed payment_id=%s err=%v", p.ID, nerr)
		}
	}
	return nil
}

// extractCheckoutSessionInfo prefers the typed data.object deserialization
// and falls back to raw-JSON traversal of the full payload: Stripe events
// from API versions the SDK does not recognize can fail the typed form.
func extractCheckoutSessionInfo(event interfaces.WebhookEvent) (checkoutSessionInfo, bool) {
	var sess checkoutSessionObject
	if err := json.Unmarshal(event.ObjectRaw, &sess); err == nil && sess.ID != "" {
		return checkoutSessionInfo{
			sessionID:         sess.ID,
			paymentStatus:     sess.PaymentStatus,
			paymentIntentID:   sess.PaymentIntent,
			clientReferenceID: sess.ClientReferenceID,
			metadataPaymentID: sess.Metadata["paymentId"],
		}, true
	}

	obj, ok := rawDataObject(event.Payload)
	if !ok {
		return checkoutSessionInfo{}, false
	}

	info := checkoutSessionInfo{
		sessionID:         textField(obj, "id"),
		paymentStatus:     textField(obj, "payment_status"),
		paymentIntentID:   idField(obj, "payment_intent"),
		clientReferenceID: textField(obj, "client_reference_id"),
	}
	if metadata, ok := obj["metadata"].(map[string]any); ok {
		info.metadataPaymentID = textField(metadata, "paymentId")
	}
	return info, true
}

func extractPaymentIntent(event interfaces.WebhookEvent) (paymentIntentObject, bool) {
	var pi paymentIntentObject
	if err := json.Unmarshal(event.ObjectRaw, &pi); err == nil && pi.ID != "" {
		return pi, true
	}

	obj, ok := rawDataObject(event.Payload)
	if !ok {
		return paymentIntentObject{}, false
	}
	return paymentIntentObject{
		ID:           textField(obj, "id"),
		LatestCharge: idField(obj, "latest_charge"),
	}, true
}

func rawDataObject(payload []byte) (map[string]any, bool) {
	var root struct {
		Data struct {
			Object map[string]any `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &root); err != nil || root.Data.Object == nil {
		return nil, false
	}
	return root.Data.Object, true
}

func textField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

// idField reads a field that Stripe serializes either as a bare id string
// or as an expanded object carrying its own "id".
func idField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		return textField(v, "id")
	}
	return ""
}
