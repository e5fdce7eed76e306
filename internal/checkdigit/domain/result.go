package domain

import (
	"github.com/google/uuid"
)

// Result is the outcome of computing check digits for one number.
type Result struct {
	DocumentType DocumentType `json:"document_type"`
	Number       string       `json:"number"`
	CheckDigits  string       `json:"check_digits"`
	Full         string       `json:"full"`
}

// NewResult builds a Result whose Full field is the number followed by its check digits.
func NewResult(documentType DocumentType, number, checkDigits string) *Result {
	return &Result{
		DocumentType: documentType,
		Number:       number,
		CheckDigits:  checkDigits,
		Full:         number + checkDigits,
	}
}

// BatchItem is one line of a batch computation. Error is empty on success.
type BatchItem struct {
	Index       int    `json:"index"`
	Number      string `json:"number"`
	CheckDigits string `json:"check_digits,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Failed reports whether the item could not be computed.
func (b BatchItem) Failed() bool {
	return b.Error != ""
}

// BatchReport aggregates a batch computation, with items in input order.
type BatchReport struct {
	ID           uuid.UUID    `json:"id"`
	DocumentType DocumentType `json:"document_type"`
	Items        []BatchItem  `json:"items"`
	SuccessCount int          `json:"success_count"`
	ErrorCount   int          `json:"error_count"`
}
