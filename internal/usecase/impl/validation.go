package impl

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "storefront/internal/domain/errors"
)

const (
	minSlugLength        = 3
	maxSlugLength        = 50
	minCatalogNameLength = 2
	maxCatalogNameLength = 100
	minCategoryNameLen   = 2
	maxCategoryNameLen   = 50
	minItemNameLength    = 2
	maxItemNameLength    = 100
	maxDescriptionLength = 500
)

// User facing validation messages.
const (
	msgCredentialsRequired = "البريد الإلكتروني وكلمة المرور مطلوبة"
	msgSlugTooShort        = "يجب أن يكون اسم الكتالوج 3 أحرف على الأقل"
	msgSlugTooLong         = "يجب أن يكون اسم الكتالوج 50 حرفًا على الأكثر"
	msgSlugPattern         = "يجب أن يحتوي اسم الكتالوج على أحرف إنجليزية صغيرة وأرقام وشرطات فقط"
	msgCatalogName         = "اسم المتجر يجب أن يكون بين 2 و 100 حرف"
	msgTheme               = "السمة المختارة غير مدعومة"
	msgWhatsApp            = "رقم واتساب غير صالح"
	msgImageURL            = "رابط الصورة غير صالح"
	msgCategoryNameShort   = "يجب أن يكون الاسم حرفين على الأقل."
	msgCategoryNameLong    = "يجب ألا يزيد الاسم عن 50 حرفاً."
	msgParentSelf          = "لا يمكن أن تكون الفئة فئة رئيسية لنفسها"
	msgItemName            = "اسم المنتج يجب أن يكون بين 2 و 100 حرف"
	msgDescriptionTooLong  = "الوصف يجب ألا يزيد عن 500 حرف"
	msgPriceNegative       = "السعر يجب أن يكون صفراً أو أكثر"
	msgCategoryRequired    = "يجب اختيار فئة للمنتج"
	msgTokenRequired       = "رمز التحقق مطلوب"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func validateSlug(slug string) error {
	switch n := utf8.RuneCountInString(slug); {
	case n < minSlugLength:
		return domainerrors.Validation(msgSlugTooShort)
	case n > maxSlugLength:
		return domainerrors.Validation(msgSlugTooLong)
	}
	if !slugPattern.MatchString(slug) {
		return domainerrors.Validation(msgSlugPattern)
	}

	return nil
}

func validateCategoryName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < minCategoryNameLen {
		return domainerrors.Validation(msgCategoryNameShort)
	}
	if n > maxCategoryNameLen {
		return domainerrors.Validation(msgCategoryNameLong)
	}

	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(strings.TrimSpace(description)) > maxDescriptionLength {
		return domainerrors.Validation(msgDescriptionTooLong)
	}

	return nil
}

// validateImageURL accepts an empty value, a local media path or an absolute http(s) URL.
func validateImageURL(raw string) error {
	if raw == "" || strings.HasPrefix(raw, "/media/") {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domainerrors.Validation(msgImageURL)
	}

	return nil
}
