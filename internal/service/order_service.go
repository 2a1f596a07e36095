package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/acaidecasa/storefront/internal/cart"
	"github.com/acaidecasa/storefront/internal/config"
	"github.com/acaidecasa/storefront/internal/domain"
	"github.com/acaidecasa/storefront/internal/events"
	"github.com/acaidecasa/storefront/internal/money"
	"github.com/acaidecasa/storefront/internal/pix"
	apperrors "github.com/acaidecasa/storefront/pkg/errors"
)

// PixGenerator produces the payment artifact for PIX submissions. The
// concrete implementation lives in internal/pix; tests substitute a fake.
type PixGenerator interface {
	Generate(ctx context.Context, p pix.Params) (pix.Charge, error)
}

// Messenger hands a composed order text to the messaging channel and
// returns the handoff URL.
type Messenger interface {
	Handoff(destination, body string) (string, error)
}

// OrderService composes order drafts into submissions: it renders the
// summary, runs the payment branch and hands the message off for dispatch.
type OrderService struct {
	cfg    *config.Config
	gen    PixGenerator
	msgr   Messenger
	bus    EventBus.Bus
	node   *snowflake.Node
	logger *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(cfg *config.Config, gen PixGenerator, msgr Messenger, bus EventBus.Bus, logger *zap.Logger) (*OrderService, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("init transaction id node: %w", err)
	}
	return &OrderService{
		cfg:    cfg,
		gen:    gen,
		msgr:   msgr,
		bus:    bus,
		node:   node,
		logger: logger,
	}, nil
}

// Submit runs one submission attempt against the session's cart. The flow is
// single-shot: validate, build the summary, run the payment branch, dispatch.
// A second attempt while one is in flight is rejected, and the in-flight flag
// is cleared on every exit path. All failures are terminal for the attempt;
// nothing is retried and no partial artifact is returned.
func (s *OrderService) Submit(ctx context.Context, sessionID string, c *cart.Cart, draft OrderDraft) (*SubmissionResult, error) {
	if !c.BeginSubmission() {
		return nil, apperrors.ErrSubmissionInFlight
	}
	defer c.EndSubmission()

	items := c.Items()
	if err := validateDraft(items, draft); err != nil {
		return nil, err
	}

	summary := BuildOrderSummary(items, draft.Customer, s.cfg.Store.Name)

	// Totals come from the items snapshot, never from the live cart: a cart
	// mutation racing this submission must not make the payment amount
	// diverge from the summary text.
	total := decimal.Zero
	itemCount := 0
	for i := range items {
		total = total.Add(items[i].LineTotal())
		itemCount += items[i].Quantity
	}

	var (
		result *SubmissionResult
		txID   string
		err    error
	)
	switch draft.PaymentMethod {
	case domain.PaymentPix:
		txID = fmt.Sprintf("ACAI-%s", s.node.Generate())
		result, err = s.submitPix(ctx, summary, total, txID)
	case domain.PaymentCash:
		result, err = s.submitCash(summary, draft)
	}
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicOrderSubmitted, events.OrderSubmitted{
		SessionID:     sessionID,
		PaymentMethod: draft.PaymentMethod,
		ItemCount:     itemCount,
		Total:         total,
		TransactionID: txID,
		Dispatched:    result.WhatsAppURL != "",
	})
	return result, nil
}

func validateDraft(items []domain.CartItem, draft OrderDraft) error {
	if len(items) == 0 {
		return &apperrors.ValidationError{Message: "Adicione pelo menos 1 item ao carrinho."}
	}
	if draft.Customer.Name == "" || draft.Customer.Phone == "" || draft.Customer.Address == "" {
		return &apperrors.ValidationError{Message: "Preencha nome, telefone e endereço para finalizar o pedido."}
	}
	if !draft.PaymentMethod.IsValid() {
		return &apperrors.ValidationError{Message: "Forma de pagamento inválida."}
	}
	return nil
}

func (s *OrderService) submitPix(ctx context.Context, summary string, total decimal.Decimal, txID string) (*SubmissionResult, error) {
	if s.cfg.Pix.Key == "" {
		return nil, &apperrors.ConfigurationError{
			Setting: "PIX_KEY",
			Message: "Chave PIX não configurada.",
		}
	}

	charge, err := s.gen.Generate(ctx, pix.Params{
		Key:           s.cfg.Pix.Key,
		ReceiverName:  s.cfg.Pix.ReceiverName,
		City:          s.cfg.Pix.City,
		TransactionID: txID,
		Message:       fmt.Sprintf("Pedido via %s", s.cfg.Store.Name),
		Amount:        total,
	})
	if err != nil {
		s.logger.Error("PIX code generation failed", zap.Error(err))
		return nil, &apperrors.ExternalCallError{
			Op:      "pix generate",
			Message: "Erro ao finalizar. Confira as configurações de PIX e tente novamente.",
			Err:     err,
		}
	}

	message := strings.Join([]string{
		summary,
		"",
		"Forma de pagamento: PIX",
		fmt.Sprintf("Valor: %s", money.BRL(total)),
		"",
		"Código PIX (copia e cola):",
		charge.Payload,
	}, "\n")

	result := &SubmissionResult{
		Summary: summary,
		Message: message,
		Pix: &PixArtifact{
			Payload: charge.Payload,
			Image:   charge.Image,
		},
	}
	s.dispatch(result)
	return result, nil
}

func (s *OrderService) submitCash(summary string, draft OrderDraft) (*SubmissionResult, error) {
	lines := []string{
		summary,
		"",
		"Forma de pagamento: Dinheiro na entrega",
	}
	if draft.ChangeFor != nil {
		lines = append(lines, fmt.Sprintf("Precisa de troco para: %s", money.BRL(*draft.ChangeFor)))
	}

	result := &SubmissionResult{
		Summary: summary,
		Message: strings.Join(lines, "\n"),
	}
	s.dispatch(result)
	return result, nil
}

// dispatch hands the composed message to the messaging channel. A missing
// destination is a non-fatal notice in both payment branches: the message
// text is part of the result either way, so the order stays completable by
// manual copy.
func (s *OrderService) dispatch(result *SubmissionResult) {
	if s.cfg.WhatsApp.Number == "" {
		s.logger.Warn("WhatsApp number not configured, order not dispatched")
		result.Notice = "Número do WhatsApp não configurado. Envie o resumo do pedido manualmente."
		return
	}

	url, err := s.msgr.Handoff(s.cfg.WhatsApp.Number, result.Message)
	if err != nil {
		s.logger.Warn("WhatsApp handoff failed", zap.Error(err))
		result.Notice = "Não foi possível montar o link do WhatsApp. Envie o resumo do pedido manualmente."
		return
	}
	result.WhatsAppURL = url
}
