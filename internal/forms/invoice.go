package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
)

// Form field names accepted by the invoice schema. The record's id and date
// are never part of the validated field set: the id comes from the caller's
// route (update/delete) and the date is stamped by the pipeline at create.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Per-field validation messages, surfaced verbatim to the end user.
const (
	MsgCustomerRequired = "Please select a customer."
	MsgAmountPositive   = "Please enter an amount greater than $0.00"
	MsgStatusRequired   = "Please select an invoice status."
)

// InvoiceInput carries the three typed fields of a successfully validated
// invoice submission. Amount is still in major currency units here; Cents
// converts it before anything is persisted.
type InvoiceInput struct {
	CustomerID string
	Amount     float64
	Status     string
}

// Outcome is the result of validating one invoice submission. Exactly one
// variant is populated: a zero-length FieldErrors map means Input is valid.
type Outcome struct {
	Input       InvoiceInput
	FieldErrors map[string][]string
}

// OK reports whether validation passed with no field errors.
func (o Outcome) OK() bool { return len(o.FieldErrors) == 0 }

// ParseInvoice validates a raw invoice submission against the schema.
//
// Every rule is checked; errors are collected per field rather than
// short-circuiting on the first failure, so a submission with an empty
// customer and a bad status reports both problems at once.
//
// Rules:
//   - customerId: present and non-empty after trimming.
//   - amount: parses as finite decimal text and is strictly greater than
//     zero. ParseFloat also accepts "NaN" and infinity spellings, which must
//     not reach coercion. No clamping or rounding happens at this stage.
//   - status: exactly "pending" or "paid", case-sensitive.
func ParseInvoice(v Values) Outcome {
	out := Outcome{FieldErrors: map[string][]string{}}

	customerID, _ := v.Get(FieldCustomerID)
	if strings.TrimSpace(customerID) == "" {
		out.FieldErrors[FieldCustomerID] = append(out.FieldErrors[FieldCustomerID], MsgCustomerRequired)
	}

	rawAmount, _ := v.Get(FieldAmount)
	amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		out.FieldErrors[FieldAmount] = append(out.FieldErrors[FieldAmount], MsgAmountPositive)
	}

	status, _ := v.Get(FieldStatus)
	if status != domain.StatusPending && status != domain.StatusPaid {
		out.FieldErrors[FieldStatus] = append(out.FieldErrors[FieldStatus], MsgStatusRequired)
	}

	if len(out.FieldErrors) > 0 {
		return out
	}

	out.FieldErrors = nil
	out.Input = InvoiceInput{
		CustomerID: strings.TrimSpace(customerID),
		Amount:     amount,
		Status:     status,
	}
	return out
}
