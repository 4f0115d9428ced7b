package textsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "cafe nandu", Fold("  Café Ñandú "))
	assert.Equal(t, "pina colada", Fold("PIÑA Colada"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Arroz con Pollo", "pollo"))
	assert.True(t, Contains("Limonada de Coco", "LIMO"))
	assert.True(t, Contains("Jugo de Maracuyá", "maracuya"))
	assert.True(t, Contains("Cualquier cosa", ""))
	assert.False(t, Contains("Sopa", "pollo"))
}
