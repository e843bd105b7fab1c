package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"streamtube/domain/model"
	"streamtube/infrastructure/auth"
	"streamtube/infrastructure/logger"
	"streamtube/infrastructure/utils"
)

// IAuthUsecase owns the demo-mode credential flow: any well-formed
// credentials are accepted, a profile is derived from the email, the session
// becomes authenticated and an HS256 token is issued for the API routes.
type IAuthUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) model.ResAuth
	Register(ctx context.Context, req model.ReqRegister) model.ResAuth
	Logout(ctx context.Context)
}

type authUsecase struct {
	session   *auth.Session
	secretKey string
}

func NewAuthUsecase(session *auth.Session, secretKey string) IAuthUsecase {
	return &authUsecase{session: session, secretKey: secretKey}
}

func (u *authUsecase) Login(ctx context.Context, req model.ReqLogin) model.ResAuth {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !strings.Contains(email, "@") || len(req.Password) < 6 {
		return model.ResAuth{ResponseCode: "400", ResponseMessage: "Invalid credentials"}
	}

	username := email[:strings.Index(email, "@")]
	user := &model.User{
		ID:       "user-" + username,
		Username: username,
		Email:    email,
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
	}
	return u.establish(user)
}

func (u *authUsecase) Register(ctx context.Context, req model.ReqRegister) model.ResAuth {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if len(username) < 3 || len(username) > 30 {
		return model.ResAuth{ResponseCode: "400", ResponseMessage: "Username must be 3-30 characters"}
	}
	if !strings.Contains(email, "@") {
		return model.ResAuth{ResponseCode: "400", ResponseMessage: "Invalid email address"}
	}
	if len(req.Password) < 6 || len(req.Password) > 128 {
		return model.ResAuth{ResponseCode: "400", ResponseMessage: "Password must be 6-128 characters"}
	}

	user := &model.User{
		ID:       "user-" + username,
		Username: username,
		Email:    email,
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
	}
	return u.establish(user)
}

func (u *authUsecase) Logout(ctx context.Context) {
	u.session.Clear()
}

func (u *authUsecase) establish(user *model.User) model.ResAuth {
	user.CreatedAt = user.CreatedAtOrNow(utils.GetCurrentTime())
	token, err := utils.GenerateToken(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}, u.secretKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to issue token")
		return model.ResAuth{ResponseCode: "500", ResponseMessage: "Internal server error"}
	}

	// Setting the session triggers the sync coordinator's rehydration.
	u.session.SetUser(user)
	return model.ResAuth{
		ResponseCode:    "200",
		ResponseMessage: "OK",
		Token:           token,
		User:            user,
	}
}
