package model

import (
	"context"
	"io"
)

// Storage stores binary objects such as profile pictures.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns the public URL of key.
	URL(key string) string
	// KeyFromURL returns the object key of a URL served by this storage.
	KeyFromURL(url string) (string, bool)
}

// Notifier delivers one-time passwords to users.
type Notifier interface {
	SendRegistrationOTP(ctx context.Context, email, name, code string) error
	SendPasswordResetOTP(ctx context.Context, email, name, code string) error
}
