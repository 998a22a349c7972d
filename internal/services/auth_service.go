package services

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/domain/models"
	"westudy/internal/repositories"
	"westudy/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const genericLoginError = "Email ou senha inválidos."

// forgotPasswordMessage never reveals whether the email is registered.
const forgotPasswordMessage = "Se um usuário com este email existir, um link de redefinição de senha foi enviado."

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService struct {
	UserRepo  repositories.UserRepository
	DB        *sql.DB
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s AuthService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AuthService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Register creates an account with a bcrypt-hashed password.
func (s AuthService) Register(name, email, password string) (models.User, error) {
	name = utils.NormalizeSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "nome é obrigatório"}
	}
	if !utils.ValidEmail(email) {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email inválido"}
	}
	if len(password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "a senha deve ter pelo menos 6 caracteres"}
	}

	repo := s.users()
	taken, err := repo.EmailTaken(email)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "erro ao registrar", Err: err}
	}
	if taken {
		return models.User{}, domain.ConflictError{Resource: "usuário", Msg: "email já cadastrado"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "erro ao registrar", Err: err}
	}

	id, err := repo.Create(name, email, string(hash))
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "erro ao registrar", Err: err}
	}

	return models.User{ID: id, Name: name, Email: email, Status: "active"}, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password share one generic error.
func (s AuthService) Login(email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", models.User{}, domain.AuthError{Msg: genericLoginError}
	}

	user, hash, err := s.users().GetByEmail(email)
	if err == sql.ErrNoRows {
		return "", models.User{}, domain.AuthError{Msg: genericLoginError}
	}
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "erro ao efetuar login", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", models.User{}, domain.AuthError{Msg: genericLoginError}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "erro ao criar o token", Err: err}
	}
	return token, user, nil
}

// Me resolves the session back into a full user record.
func (s AuthService) Me(session domain.Session) (models.User, error) {
	user, err := s.users().GetByID(session.UserID)
	if err == sql.ErrNoRows {
		return models.User{}, domain.AuthError{Msg: "sessão inválida"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "erro ao buscar usuário", Err: err}
	}
	return user, nil
}

// ForgotPassword records a reset token when the account exists and always
// answers with the same generic message.
func (s AuthService) ForgotPassword(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.ValidEmail(email) {
		return "", domain.ValidationError{Field: "email", Msg: "email inválido"}
	}

	user, _, err := s.users().GetByEmail(email)
	if err == sql.ErrNoRows {
		return forgotPasswordMessage, nil
	}
	if err != nil {
		return "", domain.InternalError{Msg: "erro ao processar solicitação", Err: err}
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", domain.InternalError{Msg: "erro ao processar solicitação", Err: err}
	}
	if err := s.users().InsertPasswordReset(user.ID, hex.EncodeToString(buf)); err != nil {
		return "", domain.InternalError{Msg: "erro ao processar solicitação", Err: err}
	}
	return forgotPasswordMessage, nil
}

func (s AuthService) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}
