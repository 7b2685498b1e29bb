package utils

import (
	"testing"
	"time"

	"letterChat/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJwtKeyComesFromConfiguration(t *testing.T) {
	key := GetJwtKey()
	require.NotEmpty(t, key)
	assert.Equal(t, configs.GetConfig().Viper.GetString("jwt.secret"), string(key))
}

func TestJwtTokenRoundtrip(t *testing.T) {
	token, err := CreateJwtToken(7, "pen@pal.example", "Pen", "Pal",
		GetJwtKey(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := VerifyToken(token, GetJwtKey())
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.ID)
	assert.Equal(t, "pen@pal.example", claims.Email)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	token, err := CreateJwtToken(7, "pen@pal.example", "Pen", "Pal",
		[]byte("one key"), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("another key"))
	assert.Error(t, err)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NoError(t, CompareHashAndPassword(hash, "correct horse battery"))
	assert.Error(t, CompareHashAndPassword(hash, "wrong horse"))
}
