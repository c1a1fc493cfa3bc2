package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"chatapp/config"
	"chatapp/internal/domain/user"
	"chatapp/internal/otp"
	"chatapp/internal/repository"
	"chatapp/internal/sms"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService orchestrates OTP issuance, verification, and
// registration/login completion.
type AuthService struct {
	userRepo  repository.UserRepository
	otpStore  otp.Store
	smsClient sms.Client
	jwtSecret []byte
	tokenTTL  time.Duration
	otpTTL    time.Duration
	now       func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, otpStore otp.Store, smsClient sms.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		otpStore:  otpStore,
		smsClient: smsClient,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.TokenExpiryDays) * 24 * time.Hour,
		otpTTL:    time.Duration(cfg.OTPExpiryMinutes) * time.Minute,
		now:       time.Now,
	}
}

type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Mobile   string
	Code     string
}

type LoginResult struct {
	User  user.User
	Token string
}

type AccessClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// IssueOTP generates a registration code for the mobile number, stores
// it, and dispatches it by SMS. The stored code stands even when
// dispatch fails, so a retried send reuses the issuance path.
func (s *AuthService) IssueOTP(ctx context.Context, mobile string) error {
	if mobile == "" {
		return chatapp_errors.ErrInvalidInput
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}

	if err := s.otpStore.Put(ctx, mobile, code, s.otpTTL); err != nil {
		return fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
	}

	return s.dispatchCode(ctx, mobile, code)
}

// CompleteRegistration verifies the pending code and creates the
// account. No credential is issued at this step.
func (s *AuthService) CompleteRegistration(ctx context.Context, in RegisterInput) error {
	if in.FullName == "" || in.Username == "" || in.Email == "" || in.Mobile == "" || in.Code == "" {
		return chatapp_errors.ErrInvalidInput
	}

	if err := s.verifyCode(ctx, in.Mobile, in.Code); err != nil {
		return err
	}

	_, err := s.userRepo.FindByAnyIdentity(ctx, in.Username, in.Email, in.Mobile)
	if err == nil {
		return chatapp_errors.ErrDuplicateAccount
	}
	if !errors.Is(err, chatapp_errors.ErrNotFound) {
		return err
	}

	newUser := &user.User{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Mobile:   in.Mobile,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return err
	}

	// Consume the code only after the account exists.
	_ = s.otpStore.Delete(ctx, in.Mobile)
	return nil
}

// RequestLoginOTP issues a fresh code for the account's registered
// mobile number, looked up by username or mobile.
func (s *AuthService) RequestLoginOTP(ctx context.Context, identifier string) error {
	if identifier == "" {
		return chatapp_errors.ErrInvalidInput
	}

	u, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}

	if err := s.otpStore.Put(ctx, u.Mobile, code, s.otpTTL); err != nil {
		return fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
	}

	return s.dispatchCode(ctx, u.Mobile, code)
}

// CompleteLogin verifies the submitted code against the pending entry
// for the account's mobile number, consumes it, and issues a signed
// bearer credential embedding the account id.
func (s *AuthService) CompleteLogin(ctx context.Context, identifier, code string) (LoginResult, error) {
	if identifier == "" || code == "" {
		return LoginResult{}, chatapp_errors.ErrInvalidInput
	}

	u, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.verifyCode(ctx, u.Mobile, code); err != nil {
		return LoginResult{}, err
	}
	_ = s.otpStore.Delete(ctx, u.Mobile)

	token, err := s.newAccessToken(u.ID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Token: token}, nil
}

// ParseAccessToken validates a bearer credential and returns its claims.
func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, chatapp_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, chatapp_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, chatapp_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, chatapp_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) verifyCode(ctx context.Context, mobile, code string) error {
	pending, err := s.otpStore.Get(ctx, mobile)
	if err != nil {
		if errors.Is(err, chatapp_errors.ErrNotFound) {
			return chatapp_errors.ErrInvalidOTP
		}
		return err
	}
	if pending.Code != code || s.now().After(pending.ExpiresAt) {
		return chatapp_errors.ErrInvalidOTP
	}
	return nil
}

func (s *AuthService) dispatchCode(ctx context.Context, mobile, code string) error {
	message := fmt.Sprintf("Your ChatApp OTP is: %s", code)
	if err := s.smsClient.SendSMS(ctx, mobile, message); err != nil {
		return fmt.Errorf("%w: %v", chatapp_errors.ErrDelivery, err)
	}
	return nil
}

func (s *AuthService) newAccessToken(userID primitive.ObjectID) (string, error) {
	now := s.now()
	claims := AccessClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// HTTPStatus maps workflow errors to response status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, chatapp_errors.ErrInvalidInput),
		errors.Is(err, chatapp_errors.ErrInvalidOTP),
		errors.Is(err, chatapp_errors.ErrDuplicateAccount):
		return http.StatusBadRequest
	case errors.Is(err, chatapp_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, chatapp_errors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the short user-facing text for an error. Wrapped
// diagnostic detail stays out of response bodies.
func UserMessage(err error) string {
	for _, sentinel := range []error{
		chatapp_errors.ErrInvalidInput,
		chatapp_errors.ErrInvalidOTP,
		chatapp_errors.ErrDuplicateAccount,
		chatapp_errors.ErrNotFound,
		chatapp_errors.ErrDelivery,
		chatapp_errors.ErrPersistence,
		chatapp_errors.ErrUnauthorized,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}
