// Package services declares the ports for the external collaborators the
// core consumes: the custody wallet service and the identity-document
// store. Implementations live under internal/infrastructure.
package services

import (
	"context"
	"io"
)

// WalletService is the custody collaborator. It never drives crediting:
// deposits are credited purely by admin approval of the self-reported
// record, decoupled from on-chain settlement.
type WalletService interface {
	// GetDepositAddress returns the platform wallet address for an asset
	// on the given transfer rail.
	GetDepositAddress(ctx context.Context, asset, network string) (string, error)
	// Withdraw asks the custody service to send amount of asset to address
	// over the given rail and returns an opaque receipt reference.
	Withdraw(ctx context.Context, asset string, amount float64, address, network string) (string, error)
}

// DocumentStore persists an uploaded identity document and returns a
// stable reference path; the core only stores the reference.
type DocumentStore interface {
	Save(ctx context.Context, ownerKey, filename string, content io.Reader) (string, error)
}
