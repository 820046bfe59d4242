package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenIssuer_SignParse(t *testing.T) {
	id := primitive.NewObjectID()
	issuer := NewTokenIssuer("secret", 30*24*time.Hour)

	token, err := issuer.Sign(id)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), claims.ID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenIssuer_OtherSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).Sign(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Sign(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).Parse("asdfasdf")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
