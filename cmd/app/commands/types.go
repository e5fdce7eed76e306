package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
)

// documentTypeInfo describes one supported document type.
type documentTypeInfo struct {
	Name        string `json:"name"`
	BaseLength  int    `json:"base_length"`
	CheckLength int    `json:"check_length"`
}

// RunListTypes prints the supported document types with their input and check digit lengths.
// A base length of 0 means any length is accepted.
func RunListTypes(writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	infos := make([]documentTypeInfo, 0, len(domain.DocumentTypes()))
	for _, t := range domain.DocumentTypes() {
		infos = append(infos, documentTypeInfo{
			Name:        t.String(),
			BaseLength:  t.BaseLength(),
			CheckLength: t.CheckLength(),
		})
	}

	if format == "json" {
		return writeJSON(writer, infos)
	}

	for _, info := range infos {
		length := "any"
		if info.BaseLength > 0 {
			length = strconv.Itoa(info.BaseLength)
		}
		if _, err := fmt.Fprintf(writer, "%-18s digits: %-4s check digits: %d\n", info.Name, length, info.CheckLength); err != nil {
			return err
		}
	}

	return nil
}
