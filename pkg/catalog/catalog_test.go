package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berroteran/promptstash/pkg/catalog"
	"github.com/berroteran/promptstash/pkg/core"
)

func TestLoad_English(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)

	assert.Equal(t, "The prompt text cannot be empty.", c.Message(core.FailureInvalidRecord))
	assert.Equal(t, "A prompt with this id already exists.", c.Message(core.FailureDuplicateID))
}

func TestLoad_Spanish(t *testing.T) {
	c, err := catalog.Load("es")
	require.NoError(t, err)

	assert.Equal(t, "El texto del prompt no puede estar vacío.", c.Message(core.FailureInvalidRecord))
	assert.Equal(t, "Selecciona una carpeta antes de guardar los cambios.", c.Message(core.FailureFolderRequiredEdit))
}

func TestLoad_UnknownLocaleFallsBack(t *testing.T) {
	c, err := catalog.Load("fr")
	require.NoError(t, err)

	assert.Equal(t, "The prompt text cannot be empty.", c.Message(core.FailureInvalidRecord))
}

func TestMessage_UnknownKeyEchoesKind(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)

	assert.Equal(t, "mystery", c.Message(core.Failure("mystery")))
}

func TestLocales_ListsEmbedded(t *testing.T) {
	locales := catalog.Locales()
	assert.Contains(t, locales, "en")
	assert.Contains(t, locales, "es")
}

func TestEveryFailureHasAMessageInEveryLocale(t *testing.T) {
	failures := []core.Failure{
		core.FailureInvalidRecord,
		core.FailureFolderRequired,
		core.FailureFolderRequiredEdit,
		core.FailureDuplicateID,
		core.FailureNotFound,
	}

	for _, locale := range catalog.Locales() {
		c, err := catalog.Load(locale)
		require.NoError(t, err)
		for _, f := range failures {
			assert.NotEqual(t, string(f), c.Message(f), "locale %s missing %s", locale, f)
		}
	}
}
