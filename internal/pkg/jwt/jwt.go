package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, companyID string, departmentID *string, role string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken mints an access token carrying the scoping claims the
// insight services read from context. Token issuance flows live in the
// identity service; this is used by internal tooling and tests.
func (j *JWTService) GenerateAccessToken(userID string, companyID string, departmentID *string, role string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(time.Hour).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"role":       role,
		"type":       "access",
		"exp":        expiresAt,
	}
	if departmentID != nil {
		claims["department_id"] = *departmentID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
