package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// WalletAccount is a provisioned card or mobile money account record.
// Exactly one of CardSchemeID and SimSchemeID is set.
type WalletAccount struct {
	ID            uuid.UUID   `json:"id"`
	ProfileID     uuid.UUID   `json:"profileId"`
	AccountTypeID uuid.UUID   `json:"accountTypeId"`
	AccountNumber string      `json:"accountNumber"`
	CardSchemeID  null.String `json:"cardSchemeId"`
	SimSchemeID   null.String `json:"simSchemeId"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Kind derives the account kind from the populated scheme reference
func (w *WalletAccount) Kind() AccountKind {
	if w.CardSchemeID.Valid {
		return AccountKindCard
	}
	return AccountKindMomo
}

// CreateWalletAccountInput represents a provisioning request.
// Fields are validated by the provisioning rules, not by binding.
type CreateWalletAccountInput struct {
	ProfileIdentifier string `json:"profile"`
	AccountType       string `json:"accountType"`
	Scheme            string `json:"scheme"`
	AccountNumber     string `json:"accountNumber"`
}

// WalletAccountResult is the outcome of a successful provisioning call
type WalletAccountResult struct {
	Account  *WalletAccount `json:"account"`
	Operator string         `json:"operator,omitempty"`
}
