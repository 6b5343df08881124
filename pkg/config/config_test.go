package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "produccion-api", cfg.App.Name)
	assert.Equal(t, "America/Bogota", cfg.App.Timezone)
	assert.Equal(t, 12, cfg.Dashboard.TrailingMonths)
	assert.Equal(t, 30, cfg.Dashboard.HistoryDays)
	assert.Equal(t, 6, cfg.Dashboard.TopClients)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t")
	t.Setenv("DASHBOARD_HISTORY_DAYS", "14")
	t.Setenv("DB_MIGRATE", "true")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, 14, cfg.Dashboard.HistoryDays)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_VentanaInvalida(t *testing.T) {
	t.Setenv("DASHBOARD_TOP_CLIENTS", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "produccion", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/produccion?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, "UTC", config.AppConfig{Timezone: "No/Existe"}.Location().String())
}
