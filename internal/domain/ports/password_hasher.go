package ports

// PasswordHasher abstrai o algoritmo de hash de senhas
type PasswordHasher interface {
	// Hash gera o hash com salt de uma senha em texto puro
	Hash(password string) (string, error)

	// Verify compara uma senha com o hash armazenado; hash malformado retorna false
	Verify(password, stored string) bool
}
