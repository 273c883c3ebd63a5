package credential

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	keyLength = 32
	ivLength  = 16
)

// Claim is the fact set embedded in the QR code. It exists only long enough
// to be encrypted; nothing persists it.
type Claim struct {
	TicketID string `json:"ticket_id"`
	Email    string `json:"email"`
	TS       string `json:"ts"`
}

// Encoder encrypts ticket claims with AES-256-CBC and a fixed key/IV pair.
// Key and IV are derived by right-padding the configured secrets with '0'
// and truncating to 32/16 bytes. Not a real KDF, and the fixed IV makes the
// scheme deterministic; both are kept so tokens stay readable by the
// deployed scanner app.
type Encoder struct {
	key []byte
	iv  []byte
}

func New(encryptionKey, encryptionIV string) *Encoder {
	return &Encoder{
		key: deriveMaterial(encryptionKey, keyLength),
		iv:  deriveMaterial(encryptionIV, ivLength),
	}
}

// Encode builds the claim for a ticket, serializes it to JSON and returns
// the hex-encoded AES-256-CBC ciphertext.
func (e *Encoder) Encode(ticketID, email string) (string, error) {
	claim := Claim{
		TicketID: ticketID,
		Email:    email,
		TS:       strconv.FormatInt(time.Now().UnixMilli(), 10),
	}

	plaintext, err := json.Marshal(claim)
	if err != nil {
		return "", fmt.Errorf("error marshaling claim: %w", err)
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("error creating cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, e.iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(ciphertext), nil
}

// Decode reverses Encode. The scanner app performs the same operation on its
// side; here it backs the round-trip tests and ad-hoc token inspection.
func (e *Encoder) Decode(token string) (*Claim, error) {
	ciphertext, err := hex.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("error decoding token: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("token length is not a multiple of the block size")
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, e.iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	var claim Claim
	if err := json.Unmarshal(plaintext, &claim); err != nil {
		return nil, fmt.Errorf("error unmarshaling claim: %w", err)
	}
	return &claim, nil
}

func deriveMaterial(secret string, length int) []byte {
	material := []byte(secret)
	for len(material) < length {
		material = append(material, '0')
	}
	return material[:length]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-padding], nil
}
