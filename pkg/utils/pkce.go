package utils

import (
	"crypto/rand"
	"strings"

	"golang.org/x/oauth2"
)

// GenerateRandomString 生成指定长度的随机字符串 (用于 state)
func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._~"
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	var result strings.Builder
	for _, bVal := range b {
		result.WriteByte(charset[int(bVal)%len(charset)])
	}
	return result.String(), nil
}

// GeneratePKCE 生成 verifier 与 state
// verifier 由 oauth2 生成 (32 字节随机数，43 字符)，challenge 在构造授权地址时按 S256 计算
func GeneratePKCE() (verifier, state string, err error) {
	state, err = GenerateRandomString(32)
	if err != nil {
		return "", "", err
	}
	return oauth2.GenerateVerifier(), state, nil
}
