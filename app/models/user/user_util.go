package user

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"regexp"
)

// 方言类型
const (
	DialectMandarin  = "zh"
	DialectCantonese = "cantonese"
	DialectSichuan   = "sichuan"
	DialectHenan     = "henan"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsValidPhone 校验大陆手机号
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// DesensitizePhone 手机号脱敏，13812345678 -> 138****5678
func DesensitizePhone(phone string) string {
	if len(phone) != 11 {
		return phone
	}
	return phone[:3] + "****" + phone[7:]
}

// PhoneCipher 手机号加解密，AES-GCM，密文为 base64(nonce|ciphertext)
type PhoneCipher struct {
	aead cipher.AEAD
}

// NewPhoneCipher key 长度必须为 16、24 或 32 字节
func NewPhoneCipher(key []byte) (*PhoneCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &PhoneCipher{aead: aead}, nil
}

// Encrypt 加密
func (p *PhoneCipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, p.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := p.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt 解密
func (p *PhoneCipher) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	size := p.aead.NonceSize()
	if len(data) < size {
		return "", errors.New("phone ciphertext too short")
	}
	plain, err := p.aead.Open(nil, data[:size], data[size:], nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
