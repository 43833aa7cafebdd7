package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountKind is the closed set of wallet account shapes
type AccountKind string

const (
	AccountKindCard AccountKind = "card"
	AccountKindMomo AccountKind = "momo"
)

// ParseAccountKind maps a catalog name onto its kind
func ParseAccountKind(name string) (AccountKind, bool) {
	switch AccountKind(strings.ToLower(strings.TrimSpace(name))) {
	case AccountKindCard:
		return AccountKindCard, true
	case AccountKindMomo:
		return AccountKindMomo, true
	default:
		return "", false
	}
}

func (k AccountKind) String() string {
	return string(k)
}

// AccountType is a catalog entry governing which wallet accounts an identity may create
type AccountType struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Kind      AccountKind `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CardScheme is a card network, e.g. visa
type CardScheme struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SimScheme is a mobile network, e.g. mtn
type SimScheme struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SchemeMatch holds the result of looking a scheme name up in both catalogs.
// Either side may be nil.
type SchemeMatch struct {
	Card *CardScheme
	Sim  *SimScheme
}

// Empty reports whether the name matched neither catalog
func (m SchemeMatch) Empty() bool {
	return m.Card == nil && m.Sim == nil
}

// CreateCatalogEntryInput represents input for adding a catalog entry
type CreateCatalogEntryInput struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}
