package utils

import (
	"net/url"
	"testing"
)

func TestRand16BytesToBase62(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token := Rand16BytesToBase62()
		if token == "" || len(token) > 22 {
			t.Fatalf("unexpected token length %d: %q", len(token), token)
		}
		if url.PathEscape(token) != token {
			t.Fatalf("token is not URL safe: %q", token)
		}
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token after %d generations: %q", i, token)
		}
		seen[token] = struct{}{}
	}
}
