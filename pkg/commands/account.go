// Package commands contains command DTOs for service and handler orchestration.
package commands

// CreateAccount carries the caller-supplied fields of a new account. The
// owner always comes from the authenticated identity.
type CreateAccount struct {
	Name        string
	Institution *string
	Type        string
	Subtype     *string
	Mask        *string
}
