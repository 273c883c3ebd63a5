package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/sirupsen/logrus"
)

// Verify checks the gateway's HMAC-SHA256 signature over the raw request
// body. With no secret configured verification is skipped and every request
// passes; that degraded mode matches a dashboard set up without a webhook
// secret and is logged on every hit.
func Verify(body []byte, provided, secret string) bool {
	if secret == "" {
		logrus.Warn("No webhook secret configured, skipping signature verification")
		return true
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(provided))
}
