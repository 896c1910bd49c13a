package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/auth"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/checkout"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/handler/dto"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/ws"
)

type QuoteSvc interface {
	Quote(ctx context.Context, propertyID string, stay domain.StaySelection) (*service.QuoteResult, error)
}

type CheckoutSvc interface {
	Start(ctx context.Context, in service.StartCheckoutInput) (*domain.CheckoutSession, error)
	SubmitPayment(ctx context.Context, id string, in checkout.PaymentInput) (*domain.CheckoutSession, []domain.FieldError, error)
	SubmitBilling(ctx context.Context, id string, in checkout.BillingInput) (*domain.CheckoutSession, []domain.FieldError, error)
	Back(ctx context.Context, id string) (*domain.CheckoutSession, error)
	Pay(ctx context.Context, id string) (*domain.PaymentConfirmation, error)
	Cancel(ctx context.Context, id string)
}

type BookingSvc interface {
	Submit(ctx context.Context, in service.SubmitInput) (*domain.Reservation, error)
}

type InboxWatcher interface {
	Watch(token string) func()
}

type Handler struct {
	quoteService    QuoteSvc
	checkoutService CheckoutSvc
	bookingService  BookingSvc
	hub             *ws.Hub
	watcher         InboxWatcher
	log             logger.Logger
}

func NewHandler(
	quoteService QuoteSvc,
	checkoutService CheckoutSvc,
	bookingService BookingSvc,
	hub *ws.Hub,
	watcher InboxWatcher,
	log logger.Logger,
) *Handler {
	return &Handler{
		quoteService:    quoteService,
		checkoutService: checkoutService,
		bookingService:  bookingService,
		hub:             hub,
		watcher:         watcher,
		log:             log,
	}
}

// Quote

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := req.ToSelection()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), req.PropertyID, stay)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Checkout

func (h *Handler) StartCheckout(c *ginext.Context) {
	var req dto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := req.ToSelection()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.checkoutService.Start(c.Request.Context(), service.StartCheckoutInput{
		PropertyID: req.PropertyID,
		Stay:       stay,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(sess))
}

func (h *Handler) SubmitPayment(c *ginext.Context) {
	var req checkout.PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, fields, err := h.checkoutService.SubmitPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrValidation.Error(), Fields: fields})
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(sess))
}

func (h *Handler) SubmitBilling(c *ginext.Context) {
	var req checkout.BillingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, fields, err := h.checkoutService.SubmitBilling(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrValidation.Error(), Fields: fields})
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(sess))
}

func (h *Handler) StepBack(c *ginext.Context) {
	sess, err := h.checkoutService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(sess))
}

func (h *Handler) Pay(c *ginext.Context) {
	confirmation, err := h.checkoutService.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfirmationResponse(confirmation))
}

func (h *Handler) CancelCheckout(c *ginext.Context) {
	h.checkoutService.Cancel(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Reservations

func (h *Handler) SubmitReservation(c *ginext.Context) {
	var req dto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := req.ToSelection()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.bookingService.Submit(c.Request.Context(), service.SubmitInput{
		PropertyID: req.PropertyID,
		Stay:       stay,
		Guests:     req.GuestsCount,
		SessionID:  req.SessionID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// Events

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the gateway sits behind the frontend's own origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventStream upgrades to WebSocket and streams booking events. When the
// caller is signed in (header or ?token=, browsers cannot set headers on
// WebSocket dials) their inbox is polled for the life of the connection.
func (h *Handler) EventStream(c *ginext.Context) {
	token, ok := auth.FromContext(c.Request.Context())
	if !ok {
		token = c.Query("token")
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed",
			logger.String("error", err.Error()),
		)
		return
	}

	var release func()
	if token != "" {
		release = h.watcher.Watch(token)
	}

	ws.NewClient(h.hub, conn, release, h.log).Serve()
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{
		"status":  "ok",
		"clients": h.hub.ClientCount(),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var rejected *domain.RejectedError

	switch {
	case errors.Is(err, domain.ErrNotSignedIn),
		errors.Is(err, domain.ErrAuthExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPermission):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusGone, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrWrongStep):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &rejected):
		// marketplace rejection text goes to the user verbatim
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: rejected.Message})

	case errors.Is(err, domain.ErrNoDatesSelected),
		errors.Is(err, domain.ErrDateOrder),
		errors.Is(err, domain.ErrTimeOrder),
		errors.Is(err, domain.ErrZeroTotal),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrUnreachable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
