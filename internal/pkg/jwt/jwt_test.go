//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"shop-winback/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken("ops-maria")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops-maria", claims.Operator)
	assert.Equal(t, "ops-maria", claims.Subject)
	assert.Equal(t, jwt.RoleOperator, claims.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				tok, err := jwt.NewService("test-secret", -time.Minute).GenerateToken("ops")
				require.NoError(t, err)
				return tok
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := jwt.NewService("other-secret", time.Hour).GenerateToken("ops")
				require.NoError(t, err)
				return tok
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token(t))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
