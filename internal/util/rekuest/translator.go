package rekuest

import (
	ut "github.com/go-playground/universal-translator"

	"milimani.co.ke/backend/internal/util/i18n"
)

// Translator returns the english translator. The admin back office is
// english-only; keeping the indirection makes adding locales a local change.
func Translator() ut.Translator {
	tr, _ := i18n.UT.GetTranslator("en")
	return tr
}
