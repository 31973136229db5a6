package validators

import "strings"

// IsPhoneValid acepta dígitos con un "+" inicial opcional, ignorando
// espacios, guiones y paréntesis. Entre 7 y 15 dígitos.
func IsPhoneValid(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
