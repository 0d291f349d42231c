package handler

import (
	"encoding/json"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	msgInvalidID    = "المعرف غير صالح"
	msgInvalidPrice = "السعر غير صالح"
)

// bindAndValidate decodes the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		// Field decoders report their own localised message.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return errors.Wrap(appErr, "bind request")
		}

		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return c.Validate(req)
}

// isFormPost reports whether the request was submitted by an HTML form.
func isFormPost(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm)
}

func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.Validation(msgInvalidID), err.Error())
	}

	return id, nil
}

// optionalUUID parses a possibly empty identifier.
func optionalUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(domainerrors.Validation(msgInvalidID), err.Error())
	}

	return &id, nil
}

// priceParam accepts a price as a JSON number, a JSON string or a form value.
// Empty values leave the price unset.
type priceParam struct {
	Value *decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *priceParam) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		p.Value = nil

		return nil
	}

	var s string
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode price")
		}
	} else {
		s = raw
	}

	return p.UnmarshalParam(s)
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (p *priceParam) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		p.Value = nil

		return nil
	}

	d, err := decimal.NewFromString(param)
	if err != nil {
		return errors.Wrap(domainerrors.Validation(msgInvalidPrice), err.Error())
	}
	p.Value = &d

	return nil
}

// flag is a boolean that also accepts HTML checkbox values such as "on".
type flag bool

// UnmarshalParam implements echo.BindUnmarshaler.
func (f *flag) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "on", "true", "1", "yes":
		*f = true
	default:
		*f = false
	}

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return f.UnmarshalParam(strings.Trim(string(data), `"`))
	}
	*f = flag(b)

	return nil
}
