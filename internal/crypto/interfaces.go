package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Sealer шифрует и расшифровывает снимки состояния экранов перед записью
// в локальную базу. Формат блоба: nonce ‖ ciphertext.
type Sealer interface {
	// Seal шифрует plaintext и возвращает блоб nonce ‖ ciphertext.
	Seal(plaintext []byte) ([]byte, error)

	// Open расшифровывает блоб, созданный Seal. Возвращает ошибку, если
	// ключ не подходит или данные повреждены.
	Open(blob []byte) ([]byte, error)
}

// PasswordHasher выводит хеш мастер-пароля, который отправляется серверу
// вместо самого пароля.
type PasswordHasher interface {
	// MasterPasswordHash возвращает base64(SHA-256(KEK ‖ authSalt)), где
	// KEK = Argon2id(password, email).
	MasterPasswordHash(password, email string) string
}
