// Package crypto encrypts designated sensitive row fields before they are
// loaded. Each organisation gets its own AES-256-GCM key derived from the
// master key, so one organisation's data can be rotated or destroyed
// without touching another's.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FieldEncryptor encrypts individual field values with per-organisation
// keys. Safe for concurrent use.
type FieldEncryptor struct {
	masterKey []byte

	mu    sync.Mutex
	aeads map[string]cipher.AEAD
}

// NewFieldEncryptor creates an encryptor from a master key. The key must
// not be empty; its exact length does not matter because per-organisation
// keys are derived by hashing.
func NewFieldEncryptor(masterKey []byte) (*FieldEncryptor, error) {
	if len(masterKey) == 0 {
		return nil, fmt.Errorf("master key must not be empty")
	}
	return &FieldEncryptor{
		masterKey: masterKey,
		aeads:     make(map[string]cipher.AEAD),
	}, nil
}

// aeadFor derives the organisation's AES-256 key and caches the AEAD.
func (e *FieldEncryptor) aeadFor(organisationID string) (cipher.AEAD, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if aead, ok := e.aeads[organisationID]; ok {
		return aead, nil
	}

	h := sha256.New()
	h.Write(e.masterKey)
	h.Write([]byte(organisationID))
	key := h.Sum(nil)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	e.aeads[organisationID] = aead
	return aead, nil
}

// EncryptValue encrypts one field value for an organisation. The result is
// base64(nonce || ciphertext). Empty values pass through untouched.
func (e *FieldEncryptor) EncryptValue(organisationID, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	aead, err := e.aeadFor(organisationID)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(value), []byte(organisationID))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptValue reverses EncryptValue.
func (e *FieldEncryptor) DecryptValue(organisationID, encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	aead, err := e.aeadFor(organisationID)
	if err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return "", fmt.Errorf("ciphertext shorter than nonce")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(organisationID))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}

// EncryptRow encrypts the named fields of a row in place. The row must be
// a pointer to a struct with csv-tagged fields.
func (e *FieldEncryptor) EncryptRow(row any, organisationID string, sensitiveFields []string) error {
	fields := models.FieldMap(row)

	for _, name := range sensitiveFields {
		value, ok := fields[name]
		if !ok || value == "" {
			continue
		}
		encrypted, err := e.EncryptValue(organisationID, value)
		if err != nil {
			return fmt.Errorf("encrypting %s: %w", name, err)
		}
		if err := models.SetField(row, name, encrypted); err != nil {
			return fmt.Errorf("encrypting %s: %w", name, err)
		}
	}
	return nil
}

// EncryptStatement encrypts the schema-designated sensitive fields of every
// row in a statement.
func (e *FieldEncryptor) EncryptStatement(stmt *models.Statement, balanceFields, transactionFields []string) error {
	for i := range stmt.Balances {
		org := stmt.Balances[i].OrganisationID
		if err := e.EncryptRow(&stmt.Balances[i], org, balanceFields); err != nil {
			return err
		}
	}
	for i := range stmt.Transactions {
		org := stmt.Transactions[i].OrganisationID
		if err := e.EncryptRow(&stmt.Transactions[i], org, transactionFields); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"balances":     len(stmt.Balances),
		"transactions": len(stmt.Transactions),
	}).Debug("Encrypted sensitive fields")
	return nil
}
