package echoapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

const (
	contextClaimsKey = "identityClaims"
	contextScopeKey  = "scope"
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	Role         string `json:"role,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

func (c Claims) identity() auth.Identity {
	return auth.Identity{
		ID:     c.Subject,
		Email:  c.Email,
		Name:   c.Name,
		Role:   c.Role,
		Avatar: c.Avatar,
	}
}

func GetIdentityClaims(conf *core.Config, ident auth.Identity, origIat ...int64) *Claims {
	now := time.Now()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = now.Unix()
	}

	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    conf.AppName,
			Subject:   ident.ID,
			Audience:  jwt.ClaimStrings{"Dashboard"},
			ExpiresAt: jwt.NewNumericDate(now.Add(conf.JWTExpirationDelta)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OrigIssuedAt: oriat,
		Email:        ident.Email,
		Name:         ident.Name,
		Role:         ident.Role,
		Avatar:       ident.Avatar,
	}
}

// GenerateToken generates a signed JWT token string representing the identity Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func authenticate(email, pwd string, svc *auth.Service, conf *core.Config) (*Claims, error) {
	ident, err := svc.Authenticate(email, pwd)
	if err != nil {
		if errors.Cause(err) == auth.ErrAuthenticationFailed {
			return nil, errAuthenticationFailed
		}
		return nil, errors.Wrap(err, "authenticating")
	}
	return GetIdentityClaims(conf, ident), nil
}

// requireAuth parses and verifies the Bearer token and stores the Claims in
// the request context.
func requireAuth(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errTokenMissing
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return errTokenMissing
			}

			claims := new(Claims)
			token, err := jwt.ParseWithClaims(
				parts[1],
				claims,
				func(*jwt.Token) (interface{}, error) { return []byte(conf.SecretKey), nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired jwt").SetInternal(err)
			}

			ctx.Set(contextClaimsKey, *claims)
			return next(ctx)
		}
	}
}

// requireRole only lets identities holding one of the given roles through.
func requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}

func adminMiddleware() echo.MiddlewareFunc {
	return requireRole(auth.RoleAdmin)
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if claims, ok := ctx.Get(contextClaimsKey).(Claims); ok {
		return claims, nil
	}
	return Claims{}, errUnauthorized
}

// getContextScope resolves (once per request) the role-scoped view for the
// authenticated identity.
func getContextScope(ctx echo.Context, repo school.Repository) (*school.Scope, error) {
	if scope, ok := ctx.Get(contextScopeKey).(*school.Scope); ok {
		return scope, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting context claims")
	}
	scope, err := school.NewScope(repo, claims.identity())
	if err != nil {
		return nil, errors.Wrap(err, "resolving scope")
	}
	ctx.Set(contextScopeKey, scope)
	return scope, nil
}

func refreshToken(ctx echo.Context, svc *auth.Service, conf *core.Config) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}

	// the account must still exist in the registry
	acct, err := svc.GetByID(claims.Subject)
	if err != nil {
		if errors.Cause(err) == auth.ErrNotFound {
			return "", errUnauthorized
		}
		return "", errors.Wrap(err, "finding account by ID")
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(conf.JWTRefreshExpirationDelta)
	if time.Now().After(expTime) {
		return "", errRefreshExpired
	}

	newClaims := GetIdentityClaims(conf, acct.Identity, claims.OrigIssuedAt)
	token, err := GenerateToken(conf, newClaims)
	return token, errors.Wrap(err, "generating token")
}
