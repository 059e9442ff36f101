package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	t.Run("prefixed", func(t *testing.T) {
		id := idgen.NewUUID("char").Generate()
		require.True(t, strings.HasPrefix(id, "char_"))
		_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
		assert.NoError(t, err)
	})

	t.Run("bare", func(t *testing.T) {
		_, err := uuid.Parse(idgen.NewUUID("").Generate())
		assert.NoError(t, err)
	})

	t.Run("unique", func(t *testing.T) {
		gen := idgen.NewUUID("draft")
		assert.NotEqual(t, gen.Generate(), gen.Generate())
	})
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("char")
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestSequentialGeneratorConcurrent(t *testing.T) {
	gen := idgen.NewSequential("")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(gen.Generate(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()
}
