// file: internals/features/finance/payments/service/receipt.go
package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ==============================================
   Receipt numbering + snapshot.
   Numbers are sequential per org per calendar
   year: RCP-<year>-<seq, zero-padded>. The
   sequence is derived inside the payment
   transaction by counting existing receipts for
   the year under the org's row locks.
============================================== */

// FormatReceiptNo renders the human-facing receipt number.
func FormatReceiptNo(year int, seq int64) string {
	return fmt.Sprintf("RCP-%d-%06d", year, seq)
}

// ReceiptSnapshot is the frozen content of a printed receipt. Once
// marshalled into the receipt row it is never regenerated.
type ReceiptSnapshot struct {
	ReceiptNo string    `json:"receipt_no"`
	IssuedAt  time.Time `json:"issued_at"`

	StudentID   uuid.UUID `json:"student_id"`
	StructureID uuid.UUID `json:"structure_id"`
	SessionID   uuid.UUID `json:"session_id"`

	InstallmentNumber  int    `json:"installment_number"`
	InstallmentAmount  int    `json:"installment_amount"`
	InstallmentDueDate string `json:"installment_due_date"`

	PaymentAmount  int     `json:"payment_amount"`
	PaymentMode    string  `json:"payment_mode"`
	TransactionRef *string `json:"transaction_ref,omitempty"`
	ReceivedBy     uuid.UUID `json:"received_by"`

	PaidAfter      int `json:"paid_after"`
	RemainingAfter int `json:"remaining_after"`

	Components []ReceiptComponentLine `json:"components"`
}

// ReceiptComponentLine mirrors one line of the fee structure at issue
// time, name included, so renames never rewrite history.
type ReceiptComponentLine struct {
	ComponentName  string `json:"component_name"`
	AdjustedAmount int    `json:"adjusted_amount"`
}

// MarshalSnapshot encodes the snapshot for the JSONB column.
func MarshalSnapshot(s ReceiptSnapshot) (datatypes.JSON, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
