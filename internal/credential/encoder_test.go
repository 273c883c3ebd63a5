package credential_test

import (
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/credential"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	enc := credential.New("super_secret_key", "super_secret_iv")

	before := time.Now().UnixMilli()
	token, err := enc.Encode("TKT-1700000000000-AB12CD", "asha@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claim, err := enc.Decode(token)
	assert.NoError(t, err)
	assert.Equal(t, "TKT-1700000000000-AB12CD", claim.TicketID)
	assert.Equal(t, "asha@example.com", claim.Email)

	ts, err := strconv.ParseInt(claim.TS, 10, 64)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
}

func TestEncode_OutputIsHex(t *testing.T) {
	enc := credential.New("key", "iv")

	token, err := enc.Encode("TKT-1-AAAAAA", "")
	assert.NoError(t, err)

	raw, err := hex.DecodeString(token)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(raw)%16, "ciphertext must be block aligned")
}

func TestDecode_WrongKeyFails(t *testing.T) {
	enc := credential.New("key_one", "shared_iv")
	other := credential.New("key_two", "shared_iv")

	token, err := enc.Encode("TKT-1-AAAAAA", "a@x.com")
	assert.NoError(t, err)

	_, err = other.Decode(token)
	assert.Error(t, err)
}

func TestDecode_MalformedToken(t *testing.T) {
	enc := credential.New("key", "iv")

	_, err := enc.Decode("not-hex")
	assert.Error(t, err)

	_, err = enc.Decode("abcd")
	assert.Error(t, err, "hex but not block aligned")
}

func TestNew_ShortAndLongSecrets(t *testing.T) {
	// Short secrets are padded, long ones truncated; both must produce a
	// working cipher rather than a constructor failure.
	short := credential.New("k", "i")
	long := credential.New(
		"this_secret_is_far_longer_than_thirty_two_bytes_in_total",
		"this_iv_is_longer_than_sixteen",
	)

	for _, enc := range []*credential.Encoder{short, long} {
		token, err := enc.Encode("TKT-1-BBBBBB", "b@x.com")
		assert.NoError(t, err)
		claim, err := enc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, "TKT-1-BBBBBB", claim.TicketID)
	}
}
