package service

import (
	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/pkg/checkdigit"
)

// NewCalculator creates the calculator for the specified document type.
func NewCalculator(documentType domain.DocumentType) (Calculator, error) {
	switch documentType {
	case domain.DocumentCPF:
		return newCalculator(documentType, checkdigit.CPF), nil
	case domain.DocumentCNPJ:
		return newCalculator(documentType, checkdigit.CNPJ), nil
	case domain.DocumentCNPJFull:
		return newCalculator(documentType, checkdigit.CNPJFull), nil
	case domain.DocumentPIS:
		return newCalculator(documentType, checkdigit.PIS), nil
	case domain.DocumentRGSP:
		return newCalculator(documentType, checkdigit.RGSP), nil
	case domain.DocumentAgenciaBB:
		return newCalculator(documentType, checkdigit.AgenciaBB), nil
	case domain.DocumentContaCorrenteBB:
		return newCalculator(documentType, checkdigit.ContaCorrenteBB), nil
	case domain.DocumentModulo10:
		return newCalculator(documentType, checkdigit.Modulo10), nil
	case domain.DocumentModulo11:
		return newCalculator(documentType, checkdigit.Modulo11), nil
	default:
		return nil, documentType.Validate()
	}
}
