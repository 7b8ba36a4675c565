package pui

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r, err := Init()
	require.NoError(t, err)
	defer r.Close()

	code, ok := r.Lookup("pui.Label")
	require.True(t, ok)
	assert.Equal(t, CodeLabel, code)
	assert.Equal(t, len(builtinCodes), r.Len())

	a, err := r.Register("app.Slider")
	require.NoError(t, err)
	again, err := r.Register("app.Slider")
	require.NoError(t, err)
	assert.Equal(t, a, again)
	b, err := r.Register("app.Dial")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Greater(t, uint32(b), uint32(a))
	for _, bc := range builtinCodes {
		assert.NotEqual(t, bc.code, a)
		assert.NotEqual(t, bc.code, b)
	}

	_, err = Init()
	assert.ErrorIs(t, err, ErrRegistryInit)
}

func TestRegistryClose(t *testing.T) {
	r, err := Init()
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = r.Register("app.Slider")
	assert.ErrorIs(t, err, ErrRegistryClosed)
	_, ok := r.Lookup("pui.Label")
	assert.False(t, ok)
	assert.ErrorIs(t, r.Close(), ErrRegistryClosed)

	r2, err := Init()
	require.NoError(t, err)
	defer r2.Close()
	code, err := r2.Register("pui.MenuButton")
	require.NoError(t, err)
	assert.Equal(t, CodeMenuButton, code)
}

func TestRegistryConcurrent(t *testing.T) {
	r, err := Init()
	require.NoError(t, err)
	defer r.Close()

	const n = 8
	codes := make([][]TypeCode, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				code, err := r.Register(fmt.Sprintf("kind%d", j))
				if err == nil {
					codes[i] = append(codes[i], code)
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Equal(t, codes[0], codes[i])
	}
	assert.Equal(t, len(builtinCodes)+50, r.Len())
}
