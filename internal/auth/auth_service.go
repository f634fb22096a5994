package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSimulatedDelay mirrors the storefront's fake network round-trip.
const DefaultSimulatedDelay = time.Second

// defaultName is the profile name fabricated for logins with no prior
// signup.
const defaultName = "John Doe"

type Service struct {
	repo  Repository
	delay time.Duration
}

// NewService builds the simulated auth flow. delay is the artificial
// latency added to Register and Login; pass 0 in tests.
func NewService(repo Repository, delay time.Duration) *Service {
	return &Service{
		repo:  repo,
		delay: delay,
	}
}

// Register fabricates an account in memory and hands back a token pair.
// The password is bcrypt-hashed even though nothing real guards it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (SessionResponse, error) {
	s.simulateLatency()

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SessionResponse{}, ErrTokenGenerationFailed
	}

	user, ok := s.repo.Create(User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	})
	if !ok {
		return SessionResponse{}, ErrEmailTaken
	}

	return s.session(user)
}

// Login verifies credentials for registered emails. An unknown email still
// succeeds with a fabricated profile, matching the storefront's pretend
// login; only a wrong password for a known account is rejected.
func (s *Service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	s.simulateLatency()

	user, ok := s.repo.GetByEmail(req.Email)
	if !ok {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return SessionResponse{}, ErrTokenGenerationFailed
		}
		user, _ = s.repo.Create(User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			Name:         defaultName,
			PasswordHash: string(hashed),
			CreatedAt:    time.Now(),
		})
		return s.session(user)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return SessionResponse{}, ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *Service) Me(ctx context.Context, userID string) (AuthResponse, error) {
	u, ok := s.repo.GetByID(userID)
	if !ok {
		return AuthResponse{}, ErrUserNotFound
	}

	return AuthResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}, nil
}

func (s *Service) session(user User) (SessionResponse, error) {
	accessToken, err := s.generateToken(user.ID, time.Minute*15)
	if err != nil {
		return SessionResponse{}, ErrTokenGenerationFailed
	}

	refreshToken, err := s.generateToken(user.ID, time.Hour*24*7)
	if err != nil {
		return SessionResponse{}, ErrTokenGenerationFailed
	}

	return SessionResponse{
		User: AuthResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) generateToken(userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// simulateLatency blocks for the configured fake round-trip time.
func (s *Service) simulateLatency() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
