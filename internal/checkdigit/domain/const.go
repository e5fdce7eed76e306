// Package domain defines the check digit domain model: the supported document types,
// computation results, and batch reports.
package domain

import (
	"github.com/allisson/checkdigit/internal/errors"
	"github.com/allisson/checkdigit/pkg/checkdigit"
)

// DocumentType identifies a check digit scheme.
type DocumentType string

const (
	DocumentCPF             DocumentType = "cpf"
	DocumentCNPJ            DocumentType = "cnpj"
	DocumentCNPJFull        DocumentType = "cnpj-full"
	DocumentPIS             DocumentType = "pis"
	DocumentRGSP            DocumentType = "rg-sp"
	DocumentAgenciaBB       DocumentType = "agencia-bb"
	DocumentContaCorrenteBB DocumentType = "conta-corrente-bb"
	DocumentModulo10        DocumentType = "modulo10"
	DocumentModulo11        DocumentType = "modulo11"
)

// Length constraints
const (
	// DefaultMaxNumberLength bounds variable-length inputs (RG, account, generic modulo).
	// The engine itself imposes no limit; this guards callers fed from untrusted input.
	DefaultMaxNumberLength = 255

	// MaxGenerateLength is the largest base number Generate will produce.
	MaxGenerateLength = 255
)

// DocumentTypes lists every supported type in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentCPF,
		DocumentCNPJ,
		DocumentCNPJFull,
		DocumentPIS,
		DocumentRGSP,
		DocumentAgenciaBB,
		DocumentContaCorrenteBB,
		DocumentModulo10,
		DocumentModulo11,
	}
}

// ParseDocumentType converts a user supplied name into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	d := DocumentType(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate checks if the document type is supported.
func (d DocumentType) Validate() error {
	switch d {
	case DocumentCPF, DocumentCNPJ, DocumentCNPJFull, DocumentPIS, DocumentRGSP,
		DocumentAgenciaBB, DocumentContaCorrenteBB, DocumentModulo10, DocumentModulo11:
		return nil
	default:
		return errors.Wrapf(ErrInvalidDocumentType, "%q", string(d))
	}
}

// String returns the string representation of the document type.
func (d DocumentType) String() string {
	return string(d)
}

// BaseLength is the required input length, or 0 when any length is accepted.
func (d DocumentType) BaseLength() int {
	switch d {
	case DocumentCPF:
		return checkdigit.CPFLength
	case DocumentCNPJ, DocumentCNPJFull:
		return checkdigit.CNPJLength
	case DocumentPIS:
		return checkdigit.PISLength
	case DocumentAgenciaBB:
		return checkdigit.AgenciaLength
	default:
		return 0
	}
}

// CheckLength is how many check digits the scheme produces.
func (d DocumentType) CheckLength() int {
	switch d {
	case DocumentCPF, DocumentCNPJFull:
		return 2
	default:
		return 1
	}
}

// IsFixedLength reports whether the scheme only accepts one input length.
func (d DocumentType) IsFixedLength() bool {
	return d.BaseLength() > 0
}
