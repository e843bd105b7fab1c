package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"streamtube/domain/model"
	"streamtube/infrastructure/auth"
)

func TestLoginAcceptsWellFormedCredentials(t *testing.T) {
	session := auth.NewSession()
	authUsecase := NewAuthUsecase(session, "test-secret")

	res := authUsecase.Login(context.Background(), model.ReqLogin{Email: "Viewer@Example.com", Password: "secret1"})

	require.Equal(t, "200", res.ResponseCode)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "user-viewer", res.User.ID)
	require.Equal(t, "viewer", res.User.Username)
	require.False(t, res.User.CreatedAt.IsZero())
	require.True(t, session.Current().IsAuthenticated)
}

func TestLoginRejectsMalformedCredentials(t *testing.T) {
	session := auth.NewSession()
	authUsecase := NewAuthUsecase(session, "test-secret")

	res := authUsecase.Login(context.Background(), model.ReqLogin{Email: "not-an-email", Password: "secret1"})
	require.Equal(t, "400", res.ResponseCode)

	res = authUsecase.Login(context.Background(), model.ReqLogin{Email: "viewer@example.com", Password: "short"})
	require.Equal(t, "400", res.ResponseCode)
	require.False(t, session.Current().IsAuthenticated)
}

func TestRegisterValidatesFields(t *testing.T) {
	session := auth.NewSession()
	authUsecase := NewAuthUsecase(session, "test-secret")

	res := authUsecase.Register(context.Background(), model.ReqRegister{Username: "ab", Email: "a@b.com", Password: "secret1"})
	require.Equal(t, "400", res.ResponseCode)

	res = authUsecase.Register(context.Background(), model.ReqRegister{Username: "creator", Email: "creator@example.com", Password: "secret1"})
	require.Equal(t, "200", res.ResponseCode)
	require.False(t, res.User.CreatedAt.IsZero())
}

func TestLogoutClearsSession(t *testing.T) {
	session := auth.NewSession()
	authUsecase := NewAuthUsecase(session, "test-secret")

	authUsecase.Login(context.Background(), model.ReqLogin{Email: "viewer@example.com", Password: "secret1"})
	require.True(t, session.Current().IsAuthenticated)

	authUsecase.Logout(context.Background())
	require.False(t, session.Current().IsAuthenticated)
}
