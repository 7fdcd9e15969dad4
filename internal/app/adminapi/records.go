// internal/app/adminapi/records.go
package adminapi

import (
	"bytes"
	"encoding/json"
)

// The record types below are read-only projections of server-side entities.
// Every field is optional; the lenient field types keep a partially malformed
// record from failing the payload it arrived in.

// Stats holds the headline counters shown above the section tabs.
type Stats struct {
	TotalUsers        Number `json:"totalUsers"`
	TotalTransactions Number `json:"totalTransactions"`
	TotalRevenue      Number `json:"totalRevenue"`
	TotalVideos       Number `json:"totalVideos"`
}

// UserRef is an embedded user reference. The API sends either a populated
// object or a bare id string.
type UserRef struct {
	ID       Text `json:"_id"`
	Username Text `json:"username"`
	Email    Text `json:"email"`
	FullName Text `json:"fullName"`
}

func (u *UserRef) UnmarshalJSON(b []byte) error {
	*u = UserRef{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '{':
		type plain UserRef
		var p plain
		if err := json.Unmarshal(b, &p); err == nil {
			*u = UserRef(p)
		}
	case '"':
		var id Text
		_ = json.Unmarshal(b, &id)
		u.ID = id
	}
	return nil
}

// GetUsername returns the referenced username; nil-safe.
func (u *UserRef) GetUsername() string {
	if u == nil {
		return ""
	}
	return u.Username.String()
}

// GetEmail returns the referenced email; nil-safe.
func (u *UserRef) GetEmail() string {
	if u == nil {
		return ""
	}
	return u.Email.String()
}

// User is a platform account as listed by /users and /users-by-date.
type User struct {
	ID            Text   `json:"_id"`
	Username      Text   `json:"username"`
	Email         Text   `json:"email"`
	FullName      Text   `json:"fullName"`
	WalletBalance Number `json:"walletBalance"`
	VideoCount    Number `json:"videoCount"`
	IsVerified    Flag   `json:"isVerified"`
	CreatedAt     Text   `json:"createdAt"`
}

// Transaction is a wallet movement.
type Transaction struct {
	ID          Text     `json:"_id"`
	User        *UserRef `json:"user"`
	Type        Text     `json:"type"`
	Amount      Number   `json:"amount"`
	Currency    Text     `json:"currency"`
	Status      Text     `json:"status"`
	Description Text     `json:"description"`
	Reference   Text     `json:"reference"`
	CreatedAt   Text     `json:"createdAt"`
}

// Payment is an inbound payment processed by the platform.
type Payment struct {
	ID            Text     `json:"_id"`
	User          *UserRef `json:"user"`
	Amount        Number   `json:"amount"`
	Currency      Text     `json:"currency"`
	PaymentMethod Text     `json:"paymentMethod"`
	Status        Text     `json:"status"`
	Reference     Text     `json:"reference"`
	CreatedAt     Text     `json:"createdAt"`
}

// CreatorPass is a subscriber's pass to a creator's content.
type CreatorPass struct {
	ID         Text     `json:"_id"`
	Creator    *UserRef `json:"creator"`
	Subscriber *UserRef `json:"subscriber"`
	Price      Number   `json:"price"`
	Currency   Text     `json:"currency"`
	Status     Text     `json:"status"`
	StartDate  Text     `json:"startDate"`
	ExpiresAt  Text     `json:"expiresAt"`
	CreatedAt  Text     `json:"createdAt"`
}

// RevenueLine is one row of the revenue-by-type breakdown.
type RevenueLine struct {
	Type   Text   `json:"type"`
	Amount Number `json:"amount"`
	Count  Number `json:"count"`
}

// FinancialData is the payload of /financial-overview.
type FinancialData struct {
	TotalRevenue        Number            `json:"totalRevenue"`
	TotalPayouts        Number            `json:"totalPayouts"`
	PlatformFees        Number            `json:"platformFees"`
	NetRevenue          Number            `json:"netRevenue"`
	TotalTransactions   Number            `json:"totalTransactions"`
	SuccessfulPayments  Number            `json:"successfulPayments"`
	PendingPayments     Number            `json:"pendingPayments"`
	FailedPayments      Number            `json:"failedPayments"`
	ActiveCreatorPasses Number            `json:"activeCreatorPasses"`
	RevenueByType       List[RevenueLine] `json:"revenueByType"`
}

// List decodes a JSON array element by element. An element that does not
// decode becomes the zero value (and renders with defaults); a value that is
// not an array decodes to an empty list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make([]T, len(raw))
	for i, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err == nil {
			out[i] = v
		}
	}
	*l = out
	return nil
}
