// Package sms delivers text messages through an external provider.
package sms

import "context"

// Client is the narrow interface the auth workflow sends OTPs through.
type Client interface {
	SendSMS(ctx context.Context, toPhoneNumber, message string) error
}
