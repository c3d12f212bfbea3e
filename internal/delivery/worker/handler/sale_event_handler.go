package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cellcontrol/config"
	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/constants"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const archivePrefix = "sale-events"

// retryableError marks failures that should make Pub/Sub redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// SaleEventHandler archives sale lifecycle events pushed by Pub/Sub
type SaleEventHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	assets         service.AssetStore
	verifyToken    func(req *http.Request) error
}

// SaleEventHandlerParams holds dependencies for the SaleEventHandler
type SaleEventHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Assets service.AssetStore
}

// NewSaleEventHandler creates a new Pub/Sub push handler
func NewSaleEventHandler(params SaleEventHandlerParams) *SaleEventHandler {
	// Google signs push requests; local and develop setups post unsigned messages
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop &&
		params.Config.Env.Env != constants.EnvLocal

	return &SaleEventHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		assets:         params.Assets,
		verifyToken:    verifyPubSubToken,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *SaleEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SaleEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse sale event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.InfoContext(ctx, "[Worker] Processing sale event",
		slog.String("type", event.Type),
		slog.String("tenant_id", event.TenantID),
		slog.String("sale_id", event.SaleID),
	)

	key, err := h.archive(ctx, &event, data)
	if err != nil {
		reqLogger.ErrorContext(ctx, "[Worker] Failed to archive sale event",
			slog.String("sale_id", event.SaleID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to retry, 200 drops a message that can never succeed
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.InfoContext(ctx, "[Worker] Sale event archived", slog.String("key", key))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the incoming header
func (h *SaleEventHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.SaleEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// archive writes the raw event under a deterministic key
func (h *SaleEventHandler) archive(ctx context.Context, event *service.SaleEvent, data []byte) (string, error) {
	key, err := archiveKey(event)
	if err != nil {
		return "", err
	}

	if err := h.assets.Put(ctx, key, data, echo.MIMEApplicationJSON); err != nil {
		return "", newRetryableError(errors.WithStack(err))
	}

	return key, nil
}

// archiveKey lays events out as sale-events/<tenant>/<yyyy-mm-dd>/<sale>-<type>.json
func archiveKey(event *service.SaleEvent) (string, error) {
	switch event.Type {
	case constants.EventSaleCreated, constants.EventSaleDeleted:
	default:
		return "", errors.Errorf("unknown event type %q", event.Type)
	}

	tenantID, err := uuid.Parse(event.TenantID)
	if err != nil {
		return "", errors.Wrap(err, "tenant_id")
	}
	saleID, err := uuid.Parse(event.SaleID)
	if err != nil {
		return "", errors.Wrap(err, "sale_id")
	}
	if event.OccurredAt.IsZero() {
		return "", errors.New("missing occurred_at")
	}

	return fmt.Sprintf("%s/%s/%s/%s-%s.json",
		archivePrefix,
		tenantID,
		event.OccurredAt.UTC().Format("2006-01-02"),
		saleID,
		strings.ReplaceAll(event.Type, ".", "-"),
	), nil
}

// verifyPubSubToken validates the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
