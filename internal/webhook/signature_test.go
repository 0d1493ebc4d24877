package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/cartverify/prepay-gateway/internal/webhook"
)

func sign(key string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureAuthenticator(t *testing.T) {
	body := []byte(`{"_embedded":{}}`)

	t.Run("valid signature", func(t *testing.T) {
		a := webhook.NewSignatureAuthenticator("secret")
		if err := a.Authenticate(body, sign("secret", body)); err != nil {
			t.Fatalf("want accepted, got %v", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		a := webhook.NewSignatureAuthenticator("secret")
		if err := a.Authenticate(body, sign("other", body)); err == nil {
			t.Fatalf("want rejection")
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		a := webhook.NewSignatureAuthenticator("secret")
		if err := a.Authenticate(body, ""); err == nil {
			t.Fatalf("want rejection")
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		a := webhook.NewSignatureAuthenticator("secret")
		if err := a.Authenticate([]byte(`{"tampered":true}`), sign("secret", body)); err == nil {
			t.Fatalf("want rejection")
		}
	})

	t.Run("empty key disables verification", func(t *testing.T) {
		a := webhook.NewSignatureAuthenticator("")
		if err := a.Authenticate(body, ""); err != nil {
			t.Fatalf("want accepted with verification disabled, got %v", err)
		}
	})
}
