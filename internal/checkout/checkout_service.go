package checkout

import (
	"context"
	"errors"
	"strings"

	"go-storefront-api/internal/address"
	"go-storefront-api/internal/cart"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Quote is a priced cart together with the session generation it was
// computed against.
type Quote struct {
	Items      []cart.Item
	Summary    Summary
	Generation int64
}

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, userID string, req SummaryRequest) (SummaryResponse, error)
	ApplyPromo(ctx context.Context, userID string, req PromoRequest) (SummaryResponse, error)
	RemovePromo(ctx context.Context, userID, stateCode string) (SummaryResponse, error)

	Options(ctx context.Context, userID string) (OptionsResponse, error)
	SelectAddress(ctx context.Context, userID, addressID string) (SelectionResponse, error)
	SelectPaymentMethod(ctx context.Context, userID, method string) (SelectionResponse, error)

	// Validate checks a selection before an order is placed and returns the
	// verified shipping address.
	Validate(ctx context.Context, userID string, sel Selection) (address.AddressResponse, error)
	// Quote prices the current cart with the session's promo code.
	Quote(ctx context.Context, userID, stateCode string) (Quote, error)
	// Reset drops the checkout session once an order is placed.
	Reset(ctx context.Context, userID string) error
}

type Deps struct {
	Carts     cart.Service
	Addresses address.Service
	Pricer    Pricer
	Sessions  SessionStore
	Logger    *zap.Logger
}

type service struct {
	carts     cart.Service
	addresses address.Service
	pricer    Pricer
	sessions  SessionStore
	logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		carts:     deps.Carts,
		addresses: deps.Addresses,
		pricer:    deps.Pricer,
		sessions:  deps.Sessions,
		logger:    deps.Logger.Named("checkout.service"),
	}
}

func validUser(userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrInvalidUserID
	}
	return nil
}

// quote prices the cart and recomputes once when the session generation
// moved underneath, so a superseded result is not handed out.
func (s *service) quote(ctx context.Context, userID, stateCode, promoOverride string) (Quote, error) {
	var q Quote
	for attempt := 0; attempt < 2; attempt++ {
		sess, err := s.sessions.Get(ctx, userID)
		if err != nil {
			return Quote{}, err
		}

		promo := sess.Promocode
		if promoOverride != "" {
			promo = promoOverride
		}

		state := stateCode
		if state == "" && sess.AddressID != "" {
			state = s.stateOf(ctx, userID, sess.AddressID)
		}

		store, err := s.carts.Current(ctx, userID)
		if err != nil {
			return Quote{}, err
		}

		items := store.Items()
		sum := s.pricer.Calculate(ctx, items, state, promo)

		gen, err := s.sessions.Generation(ctx, userID)
		if err != nil {
			return Quote{}, err
		}

		q = Quote{Items: items, Summary: sum, Generation: gen}
		if gen == sess.Generation {
			return q, nil
		}
		s.logger.Debug("checkout session changed while pricing, recomputing",
			zap.String("user_id", userID),
			zap.Int64("from", sess.Generation),
			zap.Int64("to", gen),
		)
	}
	return q, nil
}

func (s *service) stateOf(ctx context.Context, userID, addressID string) string {
	addr, err := s.addresses.GetByID(ctx, addressID, userID)
	if err != nil {
		s.logger.Debug("selected address not usable for pricing",
			zap.String("user_id", userID),
			zap.String("address_id", addressID),
			zap.Error(err),
		)
		return ""
	}
	return addr.State
}

func (s *service) Summary(ctx context.Context, userID string, req SummaryRequest) (SummaryResponse, error) {
	if err := validUser(userID); err != nil {
		return SummaryResponse{}, err
	}

	q, err := s.quote(ctx, userID, strings.TrimSpace(req.StateCode), strings.TrimSpace(req.Promocode))
	if err != nil {
		return SummaryResponse{}, err
	}
	return toSummaryResponse(q.Summary, q.Generation), nil
}

func (s *service) Quote(ctx context.Context, userID, stateCode string) (Quote, error) {
	if err := validUser(userID); err != nil {
		return Quote{}, err
	}
	return s.quote(ctx, userID, strings.TrimSpace(stateCode), "")
}

// ApplyPromo keeps the code only when the pricing backend accepted it.
func (s *service) ApplyPromo(ctx context.Context, userID string, req PromoRequest) (SummaryResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Promocode))
	if code == "" {
		return SummaryResponse{}, ErrPromoCodeRequired
	}
	if err := validUser(userID); err != nil {
		return SummaryResponse{}, err
	}

	q, err := s.quote(ctx, userID, strings.TrimSpace(req.StateCode), code)
	if err != nil {
		return SummaryResponse{}, err
	}
	if q.Summary.Degraded {
		return SummaryResponse{}, ErrPricingUnavailable
	}
	if !q.Summary.PromocodeApplied {
		return SummaryResponse{}, ErrInvalidPromoCode
	}

	gen, err := s.sessions.SetPromo(ctx, userID, code)
	if err != nil {
		return SummaryResponse{}, err
	}
	return toSummaryResponse(q.Summary, gen), nil
}

func (s *service) RemovePromo(ctx context.Context, userID, stateCode string) (SummaryResponse, error) {
	if err := validUser(userID); err != nil {
		return SummaryResponse{}, err
	}

	if _, err := s.sessions.ClearPromo(ctx, userID); err != nil {
		return SummaryResponse{}, err
	}

	q, err := s.quote(ctx, userID, strings.TrimSpace(stateCode), "")
	if err != nil {
		return SummaryResponse{}, err
	}
	return toSummaryResponse(q.Summary, q.Generation), nil
}

// Options pre-selects the default address, or the first one, when the
// session has no usable selection yet.
func (s *service) Options(ctx context.Context, userID string) (OptionsResponse, error) {
	if err := validUser(userID); err != nil {
		return OptionsResponse{}, err
	}

	list, err := s.addresses.List(ctx, userID)
	if err != nil {
		return OptionsResponse{}, err
	}

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return OptionsResponse{}, err
	}

	selected := ""
	for _, a := range list.Addresses {
		if a.ID == sess.AddressID {
			selected = a.ID
			break
		}
	}
	if selected == "" && len(list.Addresses) > 0 {
		selected = list.Addresses[0].ID
		for _, a := range list.Addresses {
			if a.IsDefault {
				selected = a.ID
				break
			}
		}
	}

	if selected != sess.AddressID {
		if _, err := s.sessions.SetAddress(ctx, userID, selected); err != nil {
			return OptionsResponse{}, err
		}
	}

	addresses := list.Addresses
	if addresses == nil {
		addresses = []address.AddressResponse{}
	}

	return OptionsResponse{
		Addresses:         addresses,
		SelectedAddressID: selected,
		PaymentMethod:     sess.PaymentMethod,
		PaymentMethods:    paymentMethods,
		Promocode:         sess.Promocode,
	}, nil
}

func (s *service) SelectAddress(ctx context.Context, userID, addressID string) (SelectionResponse, error) {
	addressID = strings.TrimSpace(addressID)
	if addressID == "" {
		return SelectionResponse{}, ErrAddressRequired
	}
	if err := validUser(userID); err != nil {
		return SelectionResponse{}, err
	}

	if _, err := s.addresses.GetByID(ctx, addressID, userID); err != nil {
		return SelectionResponse{}, err
	}
	if _, err := s.sessions.SetAddress(ctx, userID, addressID); err != nil {
		return SelectionResponse{}, err
	}

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return SelectionResponse{}, err
	}
	return SelectionResponse{SelectedAddressID: sess.AddressID, PaymentMethod: sess.PaymentMethod}, nil
}

func normalizeMethod(method string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", PaymentMethodCOD:
		return PaymentMethodCOD, nil
	case PaymentMethodOnline:
		return "", ErrOnlinePaymentUnavailable
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// SelectPaymentMethod rejects online payment without touching the session,
// so the selection stays cash on delivery.
func (s *service) SelectPaymentMethod(ctx context.Context, userID, method string) (SelectionResponse, error) {
	if strings.TrimSpace(method) == "" {
		return SelectionResponse{}, ErrInvalidPaymentMethod
	}
	m, err := normalizeMethod(method)
	if err != nil {
		return SelectionResponse{}, err
	}
	if err := validUser(userID); err != nil {
		return SelectionResponse{}, err
	}

	if err := s.sessions.SetPaymentMethod(ctx, userID, m); err != nil {
		return SelectionResponse{}, err
	}

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return SelectionResponse{}, err
	}
	return SelectionResponse{SelectedAddressID: sess.AddressID, PaymentMethod: sess.PaymentMethod}, nil
}

// Validate fails on a missing address before any I/O.
func (s *service) Validate(ctx context.Context, userID string, sel Selection) (address.AddressResponse, error) {
	if strings.TrimSpace(sel.AddressID) == "" {
		return address.AddressResponse{}, ErrAddressRequired
	}
	if _, err := normalizeMethod(sel.PaymentMethod); err != nil {
		return address.AddressResponse{}, err
	}
	if err := validUser(userID); err != nil {
		return address.AddressResponse{}, err
	}

	addr, err := s.addresses.GetByID(ctx, sel.AddressID, userID)
	if err != nil {
		if errors.Is(err, address.ErrAddressNotFound) || errors.Is(err, address.ErrInvalidAddressID) {
			return address.AddressResponse{}, ErrAddressRequired
		}
		return address.AddressResponse{}, err
	}
	return addr, nil
}

func (s *service) Reset(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}
