package endpoint

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fernet/fernet-go"
)

// noExpiry отключает проверку возраста токена: встроенные токены бессрочные
const noExpiry = -1

var (
	ErrInvalidToken = errors.New("invalid or tampered token")
	ErrNotText      = errors.New("decrypted payload is not UTF-8 text")
)

// DeriveKey выводит ключ Fernet из секрета: SHA-256 от секрета,
// закодированный в URL-safe base64
func DeriveKey(secret string) (*fernet.Key, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	sum := sha256.Sum256([]byte(secret))
	key, err := fernet.DecodeKey(base64.URLEncoding.EncodeToString(sum[:]))
	if err != nil {
		return nil, fmt.Errorf("decode derived key: %w", err)
	}
	return key, nil
}

// Decrypt расшифровывает токен ключом, выведенным из секрета
func Decrypt(token, secret string) (string, error) {
	key, err := DeriveKey(secret)
	if err != nil {
		return "", err
	}
	msg := fernet.VerifyAndDecrypt([]byte(strings.TrimSpace(token)), noExpiry, []*fernet.Key{key})
	if msg == nil {
		return "", ErrInvalidToken
	}
	if !utf8.Valid(msg) {
		return "", ErrNotText
	}
	return string(msg), nil
}

// Encrypt шифрует адрес ключом, выведенным из секрета
func Encrypt(plain, secret string) (string, error) {
	key, err := DeriveKey(secret)
	if err != nil {
		return "", err
	}
	tok, err := fernet.EncryptAndSign([]byte(plain), key)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return string(tok), nil
}
