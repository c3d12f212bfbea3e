package service

import "context"

// QRCodeService renders the QR code customers scan to reach a store's login page.
type QRCodeService interface {
	// StoreLoginQR returns a PNG pointing at the login URL of the store identified by slug.
	StoreLoginQR(ctx context.Context, slug string) ([]byte, error)

	// StoreLoginURL returns the URL encoded in the QR code.
	StoreLoginURL(slug string) string
}
