package main_test

import (
	"context"
	"testing"

	main "github.com/fwojciec/fundfaq/cmd/fundfaq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns nil once context is cancelled", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		deps.Ctx = ctx

		err := (&main.ServeCmd{Addr: "127.0.0.1:0", CORSOrigins: []string{"*"}}).Run(deps)

		require.NoError(t, err)
	})

	t.Run("returns error for unusable address", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps("")

		err := (&main.ServeCmd{Addr: "not-an-address"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
