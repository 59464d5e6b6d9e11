package ports

import "context"

// SecretStore holds private keys by ref. Missing refs surface as
// domain.ErrSecretNotFound and Delete of a missing ref succeeds.
type SecretStore interface {
	Get(ctx context.Context, ref string) (string, error)
	Put(ctx context.Context, ref string, value string) error
	Delete(ctx context.Context, ref string) error
}
