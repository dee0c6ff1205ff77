// Package validate holds the input rules applied by the register and profile forms
// before anything is sent to the server.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const MinPasswordLen = 9

var (
	ErrEmailInvalid   = errors.New("invalid email address")
	ErrPasswordShort  = errors.New("password must be longer than 8 characters")
	ErrFieldsRequired = errors.New("all fields are required")
	ErrFixInformation = errors.New("please correct the information")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Email accepts the empty string so the field shows no error until submit.
func Email(s string) error {
	if s == "" || emailPattern.MatchString(s) {
		return nil
	}
	return ErrEmailInvalid
}

func Password(s string) error {
	if len([]rune(s)) >= MinPasswordLen {
		return nil
	}
	return ErrPasswordShort
}

// Registration checks a full sign-up form in the order the form reports problems.
func Registration(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrFieldsRequired
	}
	if Email(email) != nil || Password(password) != nil {
		return ErrFixInformation
	}
	return nil
}

// Login only requires both fields.
func Login(email, password string) error {
	if email == "" || password == "" {
		return ErrFieldsRequired
	}
	return nil
}

// Name keeps letters (accented ones included) and whitespace.
func Name(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// Numeric keeps digits, plus '.' when decimals are allowed.
func Numeric(s string, allowDecimal bool) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || allowDecimal && r == '.' {
			return r
		}
		return -1
	}, s)
}
