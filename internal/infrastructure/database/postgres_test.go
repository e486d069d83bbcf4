package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig_ConnString(t *testing.T) {
	cfg := PoolConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "curateurs",
		Password: "p@ss:w/rd",
		Database: "curateurs",
		SSLMode:  "require",
	}

	parsed, err := pgxpool.ParseConfig(cfg.ConnString())
	require.NoError(t, err)

	cc := parsed.ConnConfig
	assert.Equal(t, "db.internal", cc.Host)
	assert.Equal(t, uint16(6543), cc.Port)
	assert.Equal(t, "curateurs", cc.User)
	assert.Equal(t, "p@ss:w/rd", cc.Password)
	assert.Equal(t, "curateurs", cc.Database)
	assert.Equal(t, applicationName, cc.RuntimeParams["application_name"])
}
