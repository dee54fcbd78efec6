package bootstrap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-score/internal/shared/config"
	"resume-score/internal/shared/telemetry"
)

func TestBuildWithoutDatabaseWarnsAndUsesMemoryRepos(t *testing.T) {
	var buf bytes.Buffer
	prev := telemetry.SetOutput(&buf)
	defer telemetry.SetOutput(prev)

	app, err := Build(config.Config{
		Port:          "0",
		Env:           "dev",
		LocalStoreDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Nil(t, app.DB)
	assert.NotNil(t, app.DocumentsRepo)
	assert.NotNil(t, app.AnalysesRepo)

	logged := buf.String()
	assert.Contains(t, logged, `"level":"warn"`)
	assert.Contains(t, logged, "falling back to in-memory repositories")
	assert.Contains(t, logged, "DATABASE_URL empty")
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	_, err := Build(config.Config{
		Port:          "0",
		Env:           "prod",
		LocalStoreDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
