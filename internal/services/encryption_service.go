package services

import (
	"dojolog/internal/crypto"
	"dojolog/internal/models"
)

// EncryptionService wraps the crypto service with domain-specific methods.
// A nil *EncryptionService leaves entries untouched.
type EncryptionService struct {
	crypto *crypto.EncryptionService
}

// NewEncryptionService creates a new encryption service
func NewEncryptionService(secret string) (*EncryptionService, error) {
	cryptoSvc, err := crypto.NewEncryptionServiceFromSecret(secret)
	if err != nil {
		return nil, err
	}
	return &EncryptionService{crypto: cryptoSvc}, nil
}

// EncryptEntry encrypts comment fields before storing in DB
func (s *EncryptionService) EncryptEntry(entry *models.Entry) error {
	if s == nil {
		return nil
	}
	for _, field := range []**string{&entry.BjjComment, &entry.GymComment, &entry.RatingComment} {
		if *field == nil {
			continue
		}
		sealed, err := s.crypto.Encrypt(**field)
		if err != nil {
			return err
		}
		*field = &sealed
	}
	return nil
}

// DecryptEntry decrypts comment fields after retrieving from DB
func (s *EncryptionService) DecryptEntry(entry *models.Entry) error {
	if s == nil {
		return nil
	}
	for _, field := range []**string{&entry.BjjComment, &entry.GymComment, &entry.RatingComment} {
		if *field == nil {
			continue
		}
		plain, err := s.crypto.Decrypt(**field)
		if err != nil {
			return err
		}
		*field = &plain
	}
	return nil
}
