package services

import (
	"gamestore/apperr"
	"gamestore/utils"
)

// ResolveUsername extracts the acting principal's username from the verified
// token claims. It fails closed: no claims or a missing name means no
// identity, never a fallback to request-supplied ids.
func ResolveUsername(claims *utils.Claims) (string, error) {
	if claims == nil || claims.Username == "" {
		return "", apperr.Wrap(apperr.ErrUnauthorized, "no identity")
	}
	return claims.Username, nil
}
