package checkdigit

// Parameters of every document-specific scheme.
var (
	cpfOptions      = Options{NumDigits: 2, MultiplierLimit: 12, TimesTen: true, TenSubstitute: '0'}
	cnpjOptions     = Options{NumDigits: 1, MultiplierLimit: 9, TimesTen: true, TenSubstitute: '0'}
	cnpjFullOptions = Options{NumDigits: 2, MultiplierLimit: 9, TimesTen: true, TenSubstitute: '0'}
	pisOptions      = Options{NumDigits: 1, MultiplierLimit: 9, TimesTen: true, TenSubstitute: '0'}
	rgspOptions     = Options{NumDigits: 1, MultiplierLimit: 9, TimesTen: false, TenSubstitute: '0'}
	bbOptions       = Options{NumDigits: 1, MultiplierLimit: 9, TimesTen: true, TenSubstitute: 'X'}
)

// Input lengths of the fixed-length document types.
const (
	CPFLength     = 9
	CNPJLength    = 12
	PISLength     = 10
	AgenciaLength = 4
)

// CPF returns the two check digits of a 9-digit CPF number.
func CPF(numero string) (string, error) {
	if err := checkFormat("cpf number", numero, CPFLength); err != nil {
		return "", err
	}
	return modulo11(numero, cpfOptions), nil
}

// CNPJ returns a single modulo-11 check digit of a 12-digit CNPJ base.
func CNPJ(numero string) (string, error) {
	if err := checkFormat("cnpj number", numero, CNPJLength); err != nil {
		return "", err
	}
	return modulo11(numero, cnpjOptions), nil
}

// CNPJFull returns both check digits of a 12-digit CNPJ base, the second computed over
// the base followed by the first.
func CNPJFull(numero string) (string, error) {
	if err := checkFormat("cnpj number", numero, CNPJLength); err != nil {
		return "", err
	}
	return modulo11(numero, cnpjFullOptions), nil
}

// PIS returns the check digit of a 10-digit PIS number.
func PIS(numero string) (string, error) {
	if err := checkFormat("pis number", numero, PISLength); err != nil {
		return "", err
	}
	return modulo11(numero, pisOptions), nil
}

// RGSP returns the check digit of a São Paulo RG number of any length.
func RGSP(numero string) (string, error) {
	if err := checkFormat("rg number", numero, 0); err != nil {
		return "", err
	}
	return modulo11(numero, rgspOptions), nil
}

// AgenciaBB returns the check digit of a 4-digit Banco do Brasil agency, which may be 'X'.
func AgenciaBB(numero string) (string, error) {
	if err := checkFormat("agency number", numero, AgenciaLength); err != nil {
		return "", err
	}
	return modulo11(numero, bbOptions), nil
}

// ContaCorrenteBB returns the check digit of a Banco do Brasil current account of any
// length, which may be 'X'.
func ContaCorrenteBB(numero string) (string, error) {
	if err := checkFormat("account number", numero, 0); err != nil {
		return "", err
	}
	return modulo11(numero, bbOptions), nil
}
