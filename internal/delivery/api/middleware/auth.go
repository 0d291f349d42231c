package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware turns the access token of a request into an entity.Actor.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token from the Authorization header or the session
// cookie and stores the resulting actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := accessToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
		}
		if claims.Type != service.TokenTypeAccess {
			return domainerrors.ErrUnauthenticated.WrapMessage("token is not an access token")
		}

		deliverycontext.SetActor(c, entity.Actor{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor.IsZero() {
				return domainerrors.ErrUnauthenticated.WrapMessage("role check without actor")
			}
			if !actor.Roles.Contains(requiredRole) {
				return domainerrors.ErrCatalogAccessDenied.WrapMessage("missing role " + requiredRole.String())
			}

			return next(c)
		}
	}
}

func accessToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || token == "" {
			return "", domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		return token, nil
	}

	cookie, err := c.Cookie(constants.CookieSession)
	if err != nil || cookie.Value == "" {
		return "", domainerrors.ErrUnauthenticated.WrapMessage("no access token")
	}

	return cookie.Value, nil
}
