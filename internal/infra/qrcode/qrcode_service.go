package qrcode

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"cellcontrol/config"
	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/errors"

	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	defaultSize          = 256
	defaultPublicBaseURL = "http://localhost:3000"
	pngContentType       = "image/png"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	levelName            string
	baseURL              string
	assets               service.AssetStore
	logger               *slog.Logger
}

// Params defines the dependencies of the QR code service
type Params struct {
	fx.In

	Config *config.Config
	Assets service.AssetStore
	Logger *slog.Logger
}

// New builds the QR code service from configuration
func New(params Params) service.QRCodeService {
	size, level := defaultSize, ""
	if params.Config.QRCode != nil {
		size = params.Config.QRCode.Size
		level = params.Config.QRCode.ErrorCorrectionLevel
	}

	return NewQRCodeService(size, level, params.Config.HTTP.PublicBaseURL, params.Assets, params.Logger)
}

// NewQRCodeService creates a new QR code service instance. A nil asset store disables caching.
func NewQRCodeService(size int, errorCorrectionLevel, publicBaseURL string, assets service.AssetStore, logger *slog.Logger) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}
	if publicBaseURL == "" {
		publicBaseURL = defaultPublicBaseURL
	}

	var level qrcode.RecoveryLevel
	levelName := strings.ToUpper(errorCorrectionLevel)
	switch levelName {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
		levelName = "M"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		levelName:            levelName,
		baseURL:              strings.TrimRight(publicBaseURL, "/"),
		assets:               assets,
		logger:               logger,
	}
}

// StoreLoginURL returns the storefront login page of the store.
func (s *qrcodeService) StoreLoginURL(slug string) string {
	return s.baseURL + "/" + url.PathEscape(slug) + "/login"
}

// StoreLoginQR returns the cached PNG or renders and caches a new one.
// Cache failures are logged and never fail the request.
func (s *qrcodeService) StoreLoginQR(ctx context.Context, slug string) ([]byte, error) {
	content := s.StoreLoginURL(slug)
	key := s.cacheKey(slug, content)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if s.assets != nil {
		cached, err := s.assets.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, service.ErrAssetNotFound) {
			logger.WarnContext(ctx, "QR code cache read failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	if s.assets != nil {
		if err := s.assets.Put(ctx, key, pngBytes, pngContentType); err != nil {
			logger.WarnContext(ctx, "QR code cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return pngBytes, nil
}

// cacheKey changes whenever the encoded URL, size or level changes.
func (s *qrcodeService) cacheKey(slug, content string) string {
	sum := sha256.Sum256([]byte(content + "|" + strconv.Itoa(s.size) + "|" + s.levelName))

	return "qrcodes/" + slug + "-" + hex.EncodeToString(sum[:6]) + ".png"
}
