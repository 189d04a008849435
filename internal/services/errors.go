// internal/services/errors.go
package services

import "errors"

// Sentinel errors the handler layer maps onto the HTTP error taxonomy.
var (
	ErrBidNotFound        = errors.New("bid not found")
	ErrPartNotFound       = errors.New("part not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCatalogNotFound    = errors.New("catalog part not found")
	ErrSessionNotFound    = errors.New("analytics session not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidCredentials = errors.New("Ugyldige loginoplysninger")
	ErrWrongPassword      = errors.New("Nuværende adgangskode er forkert")
	ErrDuplicateUser      = errors.New("En bruger med dette brugernavn eller email findes allerede")
	ErrDuplicateCustomer  = errors.New("En kunde med denne email eller telefonnummer findes allerede.")
	ErrDuplicatePart      = errors.New("En reservedel med dette navn findes allerede for denne enhed.")
	ErrSelfDelete         = errors.New("Du kan ikke slette din egen konto.")
)
