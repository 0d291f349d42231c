package context

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyActor is the key for storing the authenticated actor in echo.Context.
const KeyActor ContextKey = "actor"

// SetActor stores the authenticated caller in echo.Context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the authenticated caller, or a zero actor for anonymous requests.
func GetActor(c echo.Context) entity.Actor {
	if actor, ok := c.Get(string(KeyActor)).(entity.Actor); ok {
		return actor
	}

	return entity.Actor{}
}
