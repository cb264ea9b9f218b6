// Package security implementa o hash de senhas com PBKDF2-HMAC-SHA256.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/rafabene/accounts-api/internal/domain/ports"
)

// Parâmetros do formato armazenado: {salt_hex}${derived_key_hex}
const (
	Iterations = 100_000
	SaltBytes  = 16
	KeyLength  = sha256.Size
	Separator  = "$"
)

// PBKDF2Hasher implementa ports.PasswordHasher
type PBKDF2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher cria um hasher com o custo padrão
func NewPBKDF2Hasher() ports.PasswordHasher {
	return &PBKDF2Hasher{iterations: Iterations}
}

// Hash gera um salt aleatório e deriva a chave da senha.
// O salt entra na derivação como o texto hex, não os bytes brutos.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	raw := make([]byte, SaltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	return salt + Separator + hex.EncodeToString(h.derive(password, salt)), nil
}

// Verify recalcula a chave com o salt armazenado e compara o hex em minúsculas
// em tempo constante. O stored precisa ter exatamente um separador; o salt pode
// ser vazio e um digest em maiúsculas não confere.
func (h *PBKDF2Hasher) Verify(password, stored string) bool {
	salt, digest, ok := strings.Cut(stored, Separator)
	if !ok || strings.Contains(digest, Separator) {
		return false
	}

	computed := hex.EncodeToString(h.derive(password, salt))
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

func (h *PBKDF2Hasher) derive(password, salt string) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), h.iterations, KeyLength, sha256.New)
}
