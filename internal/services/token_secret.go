package services

// TokenSecret is the HMAC key for access tokens, injected through fx so the
// middleware and the user service share one secret.
type TokenSecret []byte
