package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnaud70/essikokoe/internal/application/auth"
	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
	"github.com/Arnaud70/essikokoe/pkg/config"
	pkgjwt "github.com/Arnaud70/essikokoe/pkg/jwt"
)

type fakeUtilisateurRepo struct {
	parEmail map[string]*entity.Utilisateur
	parID    map[string]*entity.Utilisateur
}

var _ repository.UtilisateurRepository = (*fakeUtilisateurRepo)(nil)

func newFakeUtilisateurRepo() *fakeUtilisateurRepo {
	return &fakeUtilisateurRepo{
		parEmail: make(map[string]*entity.Utilisateur),
		parID:    make(map[string]*entity.Utilisateur),
	}
}

func (r *fakeUtilisateurRepo) Create(u *entity.Utilisateur) error {
	if _, ok := r.parEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.parEmail[u.Email] = &cp
	r.parID[u.ID] = &cp
	return nil
}

func (r *fakeUtilisateurRepo) GetByID(id string) (*entity.Utilisateur, error) {
	u, ok := r.parID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUtilisateurRepo) GetByEmail(email string) (*entity.Utilisateur, error) {
	u, ok := r.parEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testCfg = config.JWTConfig{
	Secret:     "secret-de-test-auth",
	AccessTTL:  15 * time.Minute,
	RefreshTTL: 7 * 24 * time.Hour,
	Issuer:     "essikokoe-test",
}

func TestRegister_ForceLeRoleClient(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Nom:        "Afi",
		Email:      "Afi@Example.com",
		MotDePasse: "mot-de-passe-solide",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClient, out.Role, "l'inscription libre ne crée que des CLIENT")
	assert.Equal(t, "afi@example.com", out.Email, "l'email est normalisé en minuscules")
	assert.NotEmpty(t, out.IDUtilisateur)
}

func TestRegister_EmailDejaPris(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	_, err := uc.Register(dto.RegisterRequest{Nom: "A", Email: "a@b.com", MotDePasse: "mot-de-passe"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Nom: "B", Email: "A@B.com", MotDePasse: "autre-mdp"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_RoleArbitraire(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	out, err := uc.CreateUser(dto.CreateUserRequest{
		Nom:        "Kossi",
		Email:      "kossi@essikokoe.com",
		MotDePasse: "mot-de-passe",
		Role:       entity.RoleAgent,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAgent, out.Role)
}

func TestCreateUser_RoleInvalide(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	_, err := uc.CreateUser(dto.CreateUserRequest{
		Nom:        "X",
		Email:      "x@y.com",
		MotDePasse: "mot-de-passe",
		Role:       "SUPERADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmetUnePaireDeJetonsValides(t *testing.T) {
	repo := newFakeUtilisateurRepo()
	uc := auth.NewUseCase(repo, testCfg)

	created, err := uc.CreateUser(dto.CreateUserRequest{
		Nom: "Admin", Email: "admin@essikokoe.com", MotDePasse: "mot-de-passe", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@essikokoe.com", MotDePasse: "mot-de-passe"})
	require.NoError(t, err)

	assert.Equal(t, created.IDUtilisateur, out.Utilisateur.IDUtilisateur)

	userID, role, err := pkgjwt.Parse(testCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.IDUtilisateur, userID)
	assert.Equal(t, entity.RoleAdmin, role)

	_, _, err = pkgjwt.Parse(testCfg.Secret, out.RefreshToken)
	assert.NoError(t, err)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	_, err := uc.Register(dto.RegisterRequest{Nom: "A", Email: "a@b.com", MotDePasse: "le-bon-mdp"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", MotDePasse: "le-mauvais"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInconnu(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "inconnu@b.com", MotDePasse: "peu-importe"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inconnu et mauvais mot de passe doivent être indistinguables")
}

func TestRefresh_EmetUnNouvelAccessToken(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	_, err := uc.Register(dto.RegisterRequest{Nom: "A", Email: "a@b.com", MotDePasse: "mot-de-passe"})
	require.NoError(t, err)
	login, err := uc.Login(dto.LoginRequest{Email: "a@b.com", MotDePasse: "mot-de-passe"})
	require.NoError(t, err)

	out, err := uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(testCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.Utilisateur.IDUtilisateur, userID)
	assert.Equal(t, entity.RoleClient, role)
}

func TestRefresh_JetonInvalide(t *testing.T) {
	uc := auth.NewUseCase(newFakeUtilisateurRepo(), testCfg)

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "jeton.bidon.ici"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
