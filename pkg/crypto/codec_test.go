package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Benguin-Productions/wryft/pkg/errors"
)

func testKey(t *testing.T) string {
	t.Helper()
	raw := make([]byte, 32)
	_, err := rand.Read(raw)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func Test_EncryptDecrypt_RoundTrip(t *testing.T) {
	codec := NewMessageCodec(testKey(t))

	plaintexts := [][]byte{
		[]byte("a"),
		[]byte("hello, wryft"),
		[]byte(strings.Repeat("x", 8000)),
		[]byte("héllo wörld — ünïcode"),
	}

	for _, pt := range plaintexts {
		enc, err := codec.Encrypt(pt)
		require.NoError(t, err)

		assert.Len(t, enc.Nonce, NonceSize)
		assert.Len(t, enc.Tag, TagSize)
		assert.Equal(t, AlgorithmAESGCM, enc.Algorithm)
		assert.Len(t, enc.Ciphertext, len(pt))

		got, err := codec.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func Test_Decrypt_TamperDetection(t *testing.T) {
	codec := NewMessageCodec(testKey(t))

	enc, err := codec.Encrypt([]byte("tamper with me"))
	require.NoError(t, err)

	t.Run("flipped ciphertext bit", func(t *testing.T) {
		bad := *enc
		bad.Ciphertext = bytes.Clone(enc.Ciphertext)
		bad.Ciphertext[0] ^= 0x01

		_, err := codec.Decrypt(&bad)
		assert.ErrorIs(t, err, appErrors.ErrBodyAuthentication)
	})

	t.Run("flipped tag bit", func(t *testing.T) {
		bad := *enc
		bad.Tag = bytes.Clone(enc.Tag)
		bad.Tag[TagSize-1] ^= 0x80

		_, err := codec.Decrypt(&bad)
		assert.ErrorIs(t, err, appErrors.ErrBodyAuthentication)
	})

	t.Run("flipped nonce bit", func(t *testing.T) {
		bad := *enc
		bad.Nonce = bytes.Clone(enc.Nonce)
		bad.Nonce[3] ^= 0x01

		_, err := codec.Decrypt(&bad)
		assert.ErrorIs(t, err, appErrors.ErrBodyAuthentication)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewMessageCodec(testKey(t))
		_, err := other.Decrypt(enc)
		assert.ErrorIs(t, err, appErrors.ErrBodyAuthentication)
	})
}

func Test_Decrypt_MalformedFields(t *testing.T) {
	codec := NewMessageCodec(testKey(t))

	enc, err := codec.Encrypt([]byte("shapes matter"))
	require.NoError(t, err)

	t.Run("short nonce", func(t *testing.T) {
		bad := *enc
		bad.Nonce = enc.Nonce[:NonceSize-1]

		_, err := codec.Decrypt(&bad)
		assert.ErrorIs(t, err, appErrors.ErrMalformedBody)
	})

	t.Run("long tag", func(t *testing.T) {
		bad := *enc
		bad.Tag = append(bytes.Clone(enc.Tag), 0x00)

		_, err := codec.Decrypt(&bad)
		assert.ErrorIs(t, err, appErrors.ErrMalformedBody)
	})

	t.Run("empty tag", func(t *testing.T) {
		bad := *enc
		bad.Tag = nil

		_, err := codec.Decrypt(&bad)
		assert.ErrorIs(t, err, appErrors.ErrMalformedBody)
	})
}

func Test_Encrypt_NonceUniqueness(t *testing.T) {
	codec := NewMessageCodec(testKey(t))
	pt := []byte("same plaintext every time")

	nonces := make(map[string]bool, 10000)
	ciphertexts := make(map[string]bool, 10000)

	for i := 0; i < 10000; i++ {
		enc, err := codec.Encrypt(pt)
		require.NoError(t, err)

		n := string(enc.Nonce)
		ct := string(enc.Ciphertext)
		require.False(t, nonces[n], "nonce repeated at iteration %d", i)
		require.False(t, ciphertexts[ct], "ciphertext repeated at iteration %d", i)
		nonces[n] = true
		ciphertexts[ct] = true
	}
}

func Test_KeyConfiguration(t *testing.T) {
	t.Run("missing key fails on first use, not at construction", func(t *testing.T) {
		codec := NewMessageCodec("")

		_, err := codec.Encrypt([]byte("hi"))
		assert.ErrorIs(t, err, appErrors.ErrEncryptionKeyMissing)

		_, err = codec.Decrypt(&EncryptedBody{})
		assert.ErrorIs(t, err, appErrors.ErrEncryptionKeyMissing)
	})

	t.Run("wrong key length", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString(make([]byte, 16))
		codec := NewMessageCodec(short)

		_, err := codec.Encrypt([]byte("hi"))
		assert.ErrorIs(t, err, appErrors.ErrEncryptionKeyLength)
	})

	t.Run("not base64", func(t *testing.T) {
		codec := NewMessageCodec("%%% not base64 %%%")

		_, err := codec.Encrypt([]byte("hi"))
		assert.ErrorIs(t, err, appErrors.ErrEncryptionKeyLength)
	})
}
