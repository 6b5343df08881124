package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate("secreto", "planta-1", "produccion-api", 5)
	require.NoError(t, err)

	op, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "planta-1", op)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", "planta-1", "produccion-api", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Vencido(t *testing.T) {
	token, err := jwt.Generate("secreto", "planta-1", "produccion-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := jwt.Generate("", "planta-1", "produccion-api", 5)
	assert.Error(t, err)
	_, err = jwt.Generate("s", "", "produccion-api", 5)
	assert.Error(t, err)
}
