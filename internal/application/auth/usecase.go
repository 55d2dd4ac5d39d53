// Package auth gère l'inscription, la connexion et le renouvellement des
// jetons d'accès.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
	"github.com/Arnaud70/essikokoe/pkg/config"
	"github.com/Arnaud70/essikokoe/pkg/jwt"
)

// UseCase regroupe les cas d'usage d'authentification.
type UseCase struct {
	users repository.UtilisateurRepository
	cfg   config.JWTConfig
}

// NewUseCase construit le cas d'usage.
func NewUseCase(users repository.UtilisateurRepository, cfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Register crée un compte en libre-service. Le rôle est toujours CLIENT:
// seuls les administrateurs créent des comptes AGENT ou ADMIN via CreateUser.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.create(in.Nom, in.Email, in.MotDePasse, entity.RoleClient)
}

// CreateUser crée un compte avec un rôle arbitraire (endpoint réservé ADMIN).
func (uc *UseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.RoleValide(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	return uc.create(in.Nom, in.Email, in.MotDePasse, in.Role)
}

func (uc *UseCase) create(nom, email, motDePasse, role string) (*dto.UserResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(motDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Utilisateur{
		ID:             uuid.New().String(),
		Nom:            nom,
		Email:          email,
		MotDePasseHash: string(hash),
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Login vérifie les identifiants et émet une paire access/refresh.
// La même erreur ErrUnauthorized couvre email inconnu et mot de passe faux.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(u.MotDePasseHash), []byte(in.MotDePasse)) != nil {
		return nil, domain.ErrUnauthorized
	}

	access, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Utilisateur:  *toUserResponse(u),
	}, nil
}

// Refresh émet un nouveau jeton d'accès à partir d'un refresh token valide.
// Le rôle est relu en base pour refléter un éventuel changement de droits.
func (uc *UseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	userID, _, err := jwt.Parse(uc.cfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	u, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

func toUserResponse(u *entity.Utilisateur) *dto.UserResponse {
	return &dto.UserResponse{
		IDUtilisateur: u.ID,
		Nom:           u.Nom,
		Email:         u.Email,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt,
	}
}
