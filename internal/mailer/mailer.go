// Package mailer implements the out-of-band delivery channel for two-factor
// verification codes. The authentication service depends only on the
// [Sender] interface; the SMTP implementation and the test mock both satisfy
// it.
package mailer

import (
	"context"
)

// Sender delivers a verification code to a recipient address.
type Sender interface {
	// Send dispatches the code to the given email address. A non-nil
	// error means the message was not handed off to the mail server;
	// the already persisted code stays valid and a login retry issues a
	// fresh one.
	Send(ctx context.Context, to, code string) error
}
