package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email(""))
	assert.NoError(t, Email("ana@example.com"))
	assert.ErrorIs(t, Email("correo-invalido"), ErrEmailInvalid)
	assert.ErrorIs(t, Email("a b@example.com"), ErrEmailInvalid)
	assert.ErrorIs(t, Email("ana@example"), ErrEmailInvalid)
}

func TestPassword(t *testing.T) {
	assert.ErrorIs(t, Password("12345678"), ErrPasswordShort)
	assert.NoError(t, Password("123456789"))
}

func TestRegistration(t *testing.T) {
	assert.ErrorIs(t, Registration("", "ana@example.com", "123456789"), ErrFieldsRequired)
	assert.ErrorIs(t, Registration("Ana", "bad", "123456789"), ErrFixInformation)
	assert.ErrorIs(t, Registration("Ana", "ana@example.com", "short"), ErrFixInformation)
	assert.NoError(t, Registration("Ana", "ana@example.com", "123456789"))
}

func TestFilters(t *testing.T) {
	assert.Equal(t, "José Ñúñez", Name("José1 Ñúñez!"))
	assert.Equal(t, "72", Numeric("7a2.", false))
	assert.Equal(t, "72.5", Numeric("72.5kg", true))
}
