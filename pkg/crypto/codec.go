package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"sync"

	"github.com/Benguin-Productions/wryft/pkg/errors"
)

const (
	// AlgorithmAESGCM is the label stored alongside every encrypted body.
	AlgorithmAESGCM = "aes-256-gcm"

	keySize   = 32
	NonceSize = 12
	TagSize   = 16
)

// EncryptedBody is the at-rest form of a message body. Ciphertext, nonce
// and tag are stored as separate columns.
type EncryptedBody struct {
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
	Algorithm  string
}

// MessageCodec encrypts and decrypts message bodies with a single static
// AES-256-GCM key. The base64 key string is decoded lazily on the first
// Encrypt/Decrypt call, so code paths that never touch message bodies work
// without the key configured. Safe for concurrent use.
type MessageCodec struct {
	keyB64 string

	once   sync.Once
	aead   cipher.AEAD
	keyErr error
}

func NewMessageCodec(keyB64 string) *MessageCodec {
	return &MessageCodec{keyB64: keyB64}
}

func (c *MessageCodec) init() (cipher.AEAD, error) {
	c.once.Do(func() {
		if c.keyB64 == "" {
			c.keyErr = errors.ErrEncryptionKeyMissing
			return
		}
		key, err := base64.StdEncoding.DecodeString(c.keyB64)
		if err != nil || len(key) != keySize {
			c.keyErr = errors.ErrEncryptionKeyLength
			return
		}
		block, err := aes.NewCipher(key)
		if err != nil {
			c.keyErr = errors.Wrap(errors.CodeFailedPrecondition, "init cipher", err)
			return
		}
		c.aead, err = cipher.NewGCM(block)
		if err != nil {
			c.keyErr = errors.Wrap(errors.CodeFailedPrecondition, "init gcm", err)
		}
	})
	return c.aead, c.keyErr
}

// Encrypt seals plaintext under a fresh random 12-byte nonce.
func (c *MessageCodec) Encrypt(plaintext []byte) (*EncryptedBody, error) {
	aead, err := c.init()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "read nonce", err)
	}

	// Seal appends the 16-byte tag to the ciphertext; split it back out
	// so the columns match the stored format.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	return &EncryptedBody{
		Ciphertext: sealed[:split],
		Nonce:      nonce,
		Tag:        sealed[split:],
		Algorithm:  AlgorithmAESGCM,
	}, nil
}

// Decrypt opens a stored body. Returns ErrMalformedBody for inconsistent
// field lengths and ErrBodyAuthentication when the tag does not verify.
func (c *MessageCodec) Decrypt(body *EncryptedBody) ([]byte, error) {
	aead, err := c.init()
	if err != nil {
		return nil, err
	}

	if len(body.Nonce) != NonceSize || len(body.Tag) != TagSize {
		return nil, errors.ErrMalformedBody
	}

	sealed := make([]byte, 0, len(body.Ciphertext)+TagSize)
	sealed = append(sealed, body.Ciphertext...)
	sealed = append(sealed, body.Tag...)

	plaintext, err := aead.Open(nil, body.Nonce, sealed, nil)
	if err != nil {
		return nil, errors.ErrBodyAuthentication
	}
	return plaintext, nil
}
