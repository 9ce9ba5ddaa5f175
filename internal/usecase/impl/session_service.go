package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"threadz/config"
	"threadz/internal/domain/entity"
	domainerrors "threadz/internal/domain/errors"
	"threadz/internal/domain/repository"
	"threadz/internal/domain/service"
	"threadz/internal/errors"
	"threadz/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// UserStorageKey is the persisted session record's key.
const UserStorageKey = "urbanthreadz-user"

// account pairs a credential with its profile for in-memory accounts
// created through Register.
type account struct {
	passwordHash string
	user         entity.User
}

// sessionService implements the SessionUsecase interface. The session
// starts in the loading state; Restore resolves it to authenticated or
// anonymous. Mutations are serialized under mu, while the simulated
// backend latency is served outside it so overlapping logins resolve
// last-write-wins.
type sessionService struct {
	store        repository.KVStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	latency      time.Duration

	demoEmail    string
	demoPassword string

	mu        sync.Mutex
	user      *entity.User
	isLoading bool

	accountMu sync.Mutex
	accounts  map[string]account

	subMu   sync.Mutex
	subs    map[int]func(entity.SessionSnapshot)
	nextSub int

	persistMu sync.Mutex
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store        repository.KVStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService creates the session state container.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:        params.Store,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		latency:      params.Config.Demo.SimulatedLatency,
		demoEmail:    params.Config.Auth.DemoEmail,
		demoPassword: params.Config.Auth.DemoPassword,
		isLoading:    true,
		accounts:     make(map[string]account),
		subs:         make(map[int]func(entity.SessionSnapshot)),
	}
}

func (s *sessionService) Snapshot(_ context.Context) entity.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.setLoading(true)

	if err := s.simulateBackend(ctx); err != nil {
		s.setLoading(false)

		return nil, err
	}

	user, err := s.authenticate(input.Email, input.Password)
	if err != nil {
		s.setLoading(false)

		return nil, err
	}

	token, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		s.setLoading(false)

		return nil, errors.Wrap(err, "generate access token")
	}

	s.commitUser(ctx, user)

	return &usecase.LoginOutput{User: user, AccessToken: token}, nil
}

func (s *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.LoginOutput, error) {
	s.setLoading(true)

	if err := s.simulateBackend(ctx); err != nil {
		s.setLoading(false)

		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.setLoading(false)

		return nil, errors.Wrap(err, "hash password")
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:                "user_" + uuid.NewString(),
		Name:              input.Name,
		Email:             input.Email,
		CreatedAt:         now.Format(time.RFC3339),
		MembershipTier:    entity.TierStandard,
		NextTierThreshold: 500,
		RewardPoints:      100,
		RecentActivity: []entity.Activity{
			{Action: "Account created", Date: "Just now"},
			{Action: "Welcome bonus added", Date: "Just now", Amount: "100 points"},
		},
	}

	s.accountMu.Lock()
	s.accounts[input.Email] = account{passwordHash: hash, user: *user}
	s.accountMu.Unlock()

	token, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		s.setLoading(false)

		return nil, errors.Wrap(err, "generate access token")
	}

	s.commitUser(ctx, user)

	return &usecase.LoginOutput{User: user, AccessToken: token}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.isLoading = false
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)

	// Serialize with in-flight persist writers: a writer that read the
	// old user must finish its Set before the record is removed, and a
	// writer entering after this point re-reads a nil user and skips.
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.store.Delete(context.WithoutCancel(ctx), UserStorageKey); err != nil {
		s.logger.Error("Failed to remove persisted session",
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *sessionService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.User, error) {
	s.mu.Lock()
	// No current user means nothing to update; quietly keep the
	// anonymous session rather than failing the call.
	if s.user == nil {
		s.mu.Unlock()

		return nil, nil
	}

	if input.Name != nil {
		s.user.Name = *input.Name
	}
	if input.Email != nil {
		s.user.Email = *input.Email
	}
	if input.Avatar != nil {
		s.user.Avatar = *input.Avatar
	}

	updated := *s.user
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	s.persistAsync(ctx)

	return &updated, nil
}

func (s *sessionService) Subscribe(fn func(entity.SessionSnapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *sessionService) Restore(ctx context.Context) error {
	data, err := s.store.Get(ctx, UserStorageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Warn("Failed to read persisted session, starting anonymous",
				slog.String("error", err.Error()),
			)
		}
		s.setLoading(false)

		return nil
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn("Persisted session is corrupt, starting anonymous",
			slog.String("error", err.Error()),
		)
		s.setLoading(false)

		return nil
	}

	s.mu.Lock()
	s.user = &user
	s.isLoading = false
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)

	return nil
}

// authenticate resolves a credential to a profile. The demo account is
// always available; accounts created through Register are checked
// against their stored bcrypt hash.
func (s *sessionService) authenticate(email, password string) (*entity.User, error) {
	if email == s.demoEmail && password == s.demoPassword {
		return demoUser(s.demoEmail), nil
	}

	s.accountMu.Lock()
	acct, ok := s.accounts[email]
	s.accountMu.Unlock()

	if !ok || !s.hasher.Check(password, acct.passwordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user := acct.user

	return &user, nil
}

// simulateBackend waits out the configured latency, honoring
// cancellation.
func (s *sessionService) simulateBackend(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "login aborted")
	case <-timer.C:
		return nil
	}
}

func (s *sessionService) setLoading(loading bool) {
	s.mu.Lock()
	s.isLoading = loading
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// commitUser installs the user and clears loading as one transition.
func (s *sessionService) commitUser(ctx context.Context, user *entity.User) {
	s.mu.Lock()
	s.user = user
	s.isLoading = false
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	s.persistAsync(ctx)
}

func (s *sessionService) snapshotLocked() entity.SessionSnapshot {
	var user *entity.User
	if s.user != nil {
		u := *s.user
		user = &u
	}

	return entity.SessionSnapshot{
		User:            user,
		IsLoading:       s.isLoading,
		IsAuthenticated: user != nil,
	}
}

func (s *sessionService) notify(snapshot entity.SessionSnapshot) {
	s.subMu.Lock()
	fns := make([]func(entity.SessionSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func (s *sessionService) persistAsync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	go func() {
		s.persistMu.Lock()
		defer s.persistMu.Unlock()

		s.mu.Lock()
		var user *entity.User
		if s.user != nil {
			u := *s.user
			user = &u
		}
		s.mu.Unlock()

		if user == nil {
			return
		}

		data, err := json.Marshal(user)
		if err != nil {
			s.logger.Error("Failed to encode session for persistence",
				slog.String("error", err.Error()),
			)

			return
		}

		if err := s.store.Set(ctx, UserStorageKey, data); err != nil {
			s.logger.Error("Failed to persist session",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// demoUser returns the showcase profile used by the demo credential.
func demoUser(email string) *entity.User {
	return &entity.User{
		ID:                "user_1",
		Name:              "John Doe",
		Email:             email,
		CreatedAt:         "2023-01-15",
		TotalOrders:       12,
		TotalSpent:        1247.89,
		MembershipTier:    entity.TierPremium,
		NextTierThreshold: 2000,
		WishlistCount:     8,
		RewardPoints:      1248,
		RecentActivity: []entity.Activity{
			{Action: "Placed order #ORD-2024-003", Date: "2 days ago", Amount: "79.99"},
			{Action: "Added item to wishlist", Date: "1 week ago"},
			{Action: "Placed order #ORD-2024-002", Date: "2 weeks ago", Amount: "199.99"},
			{Action: "Updated shipping address", Date: "3 weeks ago"},
		},
	}
}
