package configs

import (
	"encoding/base64"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDialectorRedactsPassword(t *testing.T) {
	env := ENV{DBDriver: "mysql", DBUser: "shop", DBPassword: "s3cret", DBHost: "db", DBPort: "3306", DBName: "catalog"}
	dialector, dsn, err := Dialector(env)
	require.NoError(t, err)
	assert.Equal(t, "mysql", dialector.Name())
	assert.NotContains(t, dsn, "s3cret")
	assert.Contains(t, dsn, "tcp(db:3306)/catalog")

	env.DBDriver = "postgres"
	dialector, dsn, err = Dialector(env)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialector.Name())
	assert.NotContains(t, dsn, "s3cret")

	dialector, _, err = Dialector(ENV{DBDriver: "sqlite", DBPath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", dialector.Name())

	_, _, err = Dialector(ENV{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestLoadAdminCredentials(t *testing.T) {
	creds, err := LoadAdminCredentials(ENV{AdminUsername: "admin"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(creds.PasswordHash, []byte("admin")))

	hash, err := bcrypt.GenerateFromPassword([]byte("other"), bcrypt.MinCost)
	require.NoError(t, err)
	creds, err = LoadAdminCredentials(ENV{AdminUsername: "owner", AdminPasswordHash: string(hash)})
	require.NoError(t, err)
	assert.Equal(t, "owner", creds.Username)
	assert.Equal(t, hash, creds.PasswordHash)

	_, err = LoadAdminCredentials(ENV{AdminPasswordHash: "plain-text"})
	assert.Error(t, err)
}

func TestLoadSessionKeys(t *testing.T) {
	keys, err := LoadSessionKeys(ENV{AppEnv: "development"})
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
	assert.Len(t, keys.EncKey, 32)

	_, err = LoadSessionKeys(ENV{AppEnv: "production"})
	assert.Error(t, err)

	enc := base64.URLEncoding.EncodeToString
	keys, err = LoadSessionKeys(ENV{
		AppEnv:     "production",
		AppAuthKey: enc(securecookie.GenerateRandomKey(64)),
		AppEncKey:  enc(securecookie.GenerateRandomKey(32)),
	})
	require.NoError(t, err)
	assert.Len(t, keys.EncKey, 32)

	_, err = LoadSessionKeys(ENV{AppAuthKey: enc([]byte("a")), AppEncKey: enc([]byte("short"))})
	assert.Error(t, err)
}

func TestLoadCSRFKey(t *testing.T) {
	key, err := LoadCSRFKey(ENV{})
	require.NoError(t, err)
	assert.Nil(t, key)

	key, err = LoadCSRFKey(ENV{CSRFKey: base64.URLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))})
	require.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = LoadCSRFKey(ENV{CSRFKey: base64.URLEncoding.EncodeToString([]byte("short"))})
	assert.Error(t, err)
}
