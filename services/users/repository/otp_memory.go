package repository

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/spendly/internal/pkg/models"
)

type memoryEntry struct {
	otp       models.OTP
	expiresAt time.Time
}

// MemoryOTPRepo is a process local OTP store used when Redis is not
// configured. Entries do not survive a restart.
type MemoryOTPRepo struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryOTPRepository creates an in-memory OTP store
func NewMemoryOTPRepository() *MemoryOTPRepo {
	return &MemoryOTPRepo{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// SaveOTP stores a copy of otp for ttl and drops any expired entries
func (r *MemoryOTPRepo) SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for email, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, email)
		}
	}

	r.entries[otp.Email] = memoryEntry{otp: *otp, expiresAt: now.Add(ttl)}
	return nil
}

// GetOTP returns a copy of the entry for email
func (r *MemoryOTPRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[email]
	if !ok {
		return nil, models.ErrOTPNotFound
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.entries, email)
		return nil, models.ErrOTPNotFound
	}
	otp := entry.otp
	return &otp, nil
}

// DeleteOTP removes the entry for email
func (r *MemoryOTPRepo) DeleteOTP(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, email)
	return nil
}
