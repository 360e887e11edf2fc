package service

import (
	"gopkg.in/guregu/null.v3"

	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
)

// canonicalTypeAndStatus normalizes both closed enums on writes, so stored
// rows never carry the mixed casings legacy content had.
func canonicalTypeAndStatus(rawType, rawStatus string) (string, string, error) {
	typ, err := types.CanonicalPropertyType(rawType)
	if err != nil {
		return "", "", err
	}
	if typ == "" {
		return "", "", apperr.ErrInvalidReq.Msg("type is required and must name a concrete property type")
	}

	status, err := types.CanonicalPropertyStatus(rawStatus)
	if err != nil {
		return "", "", err
	}
	if status == "" {
		return "", "", apperr.ErrInvalidReq.Msg("status is required and must name a concrete listing status")
	}

	return typ, status, nil
}

func nullFromPtr(v *int64) null.Int {
	if v == nil {
		return null.Int{}
	}
	return null.IntFrom(*v)
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
