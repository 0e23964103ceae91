// internal/app/system/intake/service.go
package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/cochranfilms/crewops/internal/app/system/sanitize"
	"github.com/cochranfilms/crewops/internal/domain/models"
	"go.uber.org/zap"
)

// ErrPersistFailed is what the apply endpoint reports when the document
// cannot be written, including a conflict that survived every retry.
var ErrPersistFailed = errors.New("Failed to persist users.json")

// ErrLoadFailed is returned when the current document cannot be read and the
// empty-document fallback is disabled.
var ErrLoadFailed = errors.New("Failed to load users.json")

// Service runs the intake cycle: load the current users document, merge the
// submission, write conditionally, and retry on version conflict.
type Service struct {
	Store *userstore.Store
	Log   *zap.Logger

	// MaxAttempts bounds the load→merge→save loop. Only a version conflict
	// triggers another attempt; other failures return immediately.
	MaxAttempts int

	// AllowEmptyFallback controls what a load failure means. True (the
	// historical behavior) starts from an empty document with no version,
	// accepting that a transient read failure can clobber prior state.
	// False fails the submission instead.
	AllowEmptyFallback bool

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewService returns a Service with the default policy: three attempts,
// empty-document fallback on load failure.
func NewService(store *userstore.Store, logger *zap.Logger) *Service {
	return &Service{
		Store:              store,
		Log:                logger,
		MaxAttempts:        3,
		AllowEmptyFallback: true,
	}
}

// Submit validates, sanitizes, and persists one submission. The returned
// error is ErrMissingFields, ErrLoadFailed, ErrPersistFailed, or nil.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	sub = sanitizeSubmission(sub)

	attempts := s.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	key := sub.NameKey()
	for attempt := 1; attempt <= attempts; attempt++ {
		current, ver, err := s.load(ctx)
		if err != nil {
			return err
		}

		next := Merge(current, sub, now())
		message := fmt.Sprintf("Add/Update applicant %s via apply API - %s", key, now().Format("1/2/2006, 3:04:05 PM"))

		_, err = s.Store.Save(ctx, next, ver, message)
		if err == nil {
			s.Log.Info("applicant persisted",
				zap.String("name", key),
				zap.Int("attempt", attempt),
				zap.Int("total_users", next.TotalUsers))
			return nil
		}
		if errors.Is(err, docstore.ErrConflict) && attempt < attempts {
			s.Log.Warn("users document moved during intake, retrying",
				zap.String("name", key),
				zap.Int("attempt", attempt))
			continue
		}
		s.Log.Error("users document write failed",
			zap.String("name", key),
			zap.Error(err))
		return ErrPersistFailed
	}
	return ErrPersistFailed
}

func (s *Service) load(ctx context.Context) (models.UsersDocument, docstore.Version, error) {
	current, ver, err := s.Store.Load(ctx)
	if err == nil {
		return current, ver, nil
	}
	if errors.Is(err, docstore.ErrNotFound) {
		// First applicant ever: start fresh regardless of policy.
		return models.EmptyUsersDocument(), "", nil
	}
	if s.AllowEmptyFallback {
		s.Log.Warn("users document load failed, starting from empty document", zap.Error(err))
		return models.EmptyUsersDocument(), "", nil
	}
	s.Log.Error("users document load failed", zap.Error(err))
	return models.UsersDocument{}, "", ErrLoadFailed
}

func sanitizeSubmission(sub Submission) Submission {
	sub.ApplyingFor = sanitize.Text(sub.ApplyingFor)
	sub.Description = sanitize.Text(sub.Description)
	sub.Location = sanitize.Text(sub.Location)
	return sub
}
