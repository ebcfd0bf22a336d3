package internal

import (
	"fmt"
	"strings"

	"gitee.com/golang-module/dongle"
)

const (
	keySize = 32
	ivSize  = 16
)

// Encryptor seals trade info for the gateway: AES-256-CBC with PKCS#7 padding
// under the merchant HashKey and a fixed HashIV, then a SHA-256 check value.
// The fixed IV is part of the gateway protocol, identical input gives identical output.
// An Encryptor holds no mutable state and is safe for concurrent use.
type Encryptor struct {
	hashKey string
	hashIV  string
}

// NewEncryptor validates the key material; key must be 32 bytes and iv 16 bytes.
func NewEncryptor(hashKey string, hashIV string) (*Encryptor, error) {
	if len(hashKey) != keySize {
		return nil, &ConfigurationError{Field: "hash key", Reason: fmt.Sprintf("must be %d bytes, got %d", keySize, len(hashKey))}
	}
	if len(hashIV) != ivSize {
		return nil, &ConfigurationError{Field: "hash iv", Reason: fmt.Sprintf("must be %d bytes, got %d", ivSize, len(hashIV))}
	}
	return &Encryptor{
		hashKey: hashKey,
		hashIV:  hashIV,
	}, nil
}

func (e *Encryptor) cipher() *dongle.Cipher {
	c := dongle.NewCipher()
	c.SetMode(dongle.CBC)
	c.SetPadding(dongle.PKCS7)
	c.SetKey(e.hashKey)
	c.SetIV(e.hashIV)
	return c
}

// Encrypt returns the uppercase hex ciphertext of plainText.
func (e *Encryptor) Encrypt(plainText string) (string, error) {
	if plainText == "" {
		return "", fmt.Errorf("plain text cannot be empty")
	}
	encrypted := dongle.Encrypt.FromString(plainText).ByAes(e.cipher())
	if encrypted.Error != nil {
		return "", fmt.Errorf("aes encrypt: %w", encrypted.Error)
	}
	return strings.ToUpper(encrypted.ToHexString()), nil
}

// decrypt reverses Encrypt; hex input may be in either case.
func (e *Encryptor) decrypt(cipherText string) (string, error) {
	if cipherText == "" {
		return "", fmt.Errorf("cipher text cannot be empty")
	}
	decrypted := dongle.Decrypt.FromHexString(strings.ToLower(cipherText)).ByAes(e.cipher())
	if decrypted.Error != nil {
		return "", fmt.Errorf("aes decrypt: %w", decrypted.Error)
	}
	return decrypted.ToString(), nil
}

// TradeSha computes the check value over the encrypted trade info.
func (e *Encryptor) TradeSha(encrypted string) string {
	plain := fmt.Sprintf("HashKey=%s&%s&HashIV=%s", e.hashKey, encrypted, e.hashIV)
	return strings.ToUpper(dongle.Encrypt.FromString(plain).BySha256().ToHexString())
}
