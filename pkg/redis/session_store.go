package redis

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/google/uuid"
)

// SessionData holds the data stored in the session
type SessionData struct {
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// SessionStore keeps sessions in Redis as compact JWE strings encrypted
// with a direct AES-256-GCM key.
type SessionStore struct {
	encryptionKey []byte
	encrypter     jose.Encrypter
}

// NewSessionStore creates a new session store
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: key},
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &SessionStore{encryptionKey: key, encrypter: encrypter}, nil
}

// CreateSession stores encrypted session data in Redis
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	jwe, err := s.encrypter.Encrypt(jsonData)
	if err != nil {
		return err
	}

	serialized, err := jwe.CompactSerialize()
	if err != nil {
		return err
	}

	return Set(ctx, "session:"+sessionID, serialized, expiration)
}

// GetSession retrieves and decrypts session data from Redis
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	serialized, err := Get(ctx, "session:"+sessionID)
	if err != nil {
		return nil, err
	}

	jwe, err := jose.ParseEncrypted(serialized)
	if err != nil {
		return nil, err
	}

	jsonData, err := jwe.Decrypt(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// DeleteSession removes a session from Redis
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return Del(ctx, "session:"+sessionID)
}
