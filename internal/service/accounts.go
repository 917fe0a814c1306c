package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/core/auth"
	"barber-booking-api/internal/domain"
	"barber-booking-api/pkg/utils"
)

// Accounts 账号域：注册、登录发 token、改密码、软删/恢复。
type Accounts struct {
	Lifecycle[domain.User]
	users domain.UserRepository
	jwt   *auth.JWTer
	log   *zap.Logger
}

func NewAccounts(users domain.UserRepository, jwt *auth.JWTer, log *zap.Logger) *Accounts {
	return &Accounts{
		Lifecycle: NewLifecycle[domain.User](users, "user"),
		users:     users,
		jwt:       jwt,
		log:       log,
	}
}

type LoginResult struct {
	UserID    uint                `json:"userId"`
	Category  domain.UserCategory `json:"category"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

func (s *Accounts) Register(ctx context.Context, name, email, password string, category domain.UserCategory) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	switch {
	case name == "":
		return nil, apperr.Invalid("name is required")
	case email == "":
		return nil, apperr.Invalid("email is required")
	case password == "":
		return nil, apperr.Invalid("password is required")
	case !category.Valid():
		return nil, apperr.Invalid("unknown user category")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("hash password failed", err)
	}
	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Category:     category,
		Active:       true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, apperr.Wrap(err, "create user failed")
	}
	s.log.Info("user registered", zap.Uint("id", u.ID), zap.Stringer("category", u.Category))
	return u, nil
}

// Login 客户类账号不允许走这个入口，返回 Forbidden 让边界映射成 403。
func (s *Accounts) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperr.Internal("load user failed", err)
	}
	// 查无此人和密码不对给同一个错误，不暴露账号是否存在
	if u == nil || !u.Active {
		return nil, apperr.Unauth("invalid credentials")
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.Unauth("invalid credentials")
	}
	if u.Category == domain.CategoryClient {
		return nil, apperr.Forbidden("client accounts cannot sign in here")
	}

	token, exp, err := s.jwt.Issue(u.ID, u.Category)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	s.log.Info("login ok", zap.Uint("id", u.ID), zap.Stringer("category", u.Category))
	return &LoginResult{UserID: u.ID, Category: u.Category, Token: token, ExpiresAt: exp}, nil
}

// ChangePassword 必须先验旧密码
func (s *Accounts) ChangePassword(ctx context.Context, id uint, oldPw, newPw string) error {
	if newPw == "" {
		return apperr.Invalid("new password is required")
	}
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(oldPw, u.PasswordHash) {
		return apperr.Unauth("current password does not match")
	}
	hash, err := utils.HashPassword(newPw)
	if err != nil {
		return apperr.Internal("hash password failed", err)
	}
	u.PasswordHash = hash
	if err := s.users.Update(ctx, u); err != nil {
		return apperr.Wrap(err, "update user failed")
	}
	s.log.Info("password changed", zap.Uint("id", id))
	return nil
}

func (s *Accounts) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

// Update 改基本资料，密码只能走 ChangePassword。
func (s *Accounts) Update(ctx context.Context, id uint, name, email string, category domain.UserCategory) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	switch {
	case name == "":
		return nil, apperr.Invalid("name is required")
	case email == "":
		return nil, apperr.Invalid("email is required")
	case !category.Valid():
		return nil, apperr.Invalid("unknown user category")
	}
	u.Name = name
	u.Email = email
	u.Category = category
	if err := s.users.Update(ctx, u); err != nil {
		return nil, apperr.Wrap(err, "update user failed")
	}
	return u, nil
}

func (s *Accounts) List(ctx context.Context, activeOnly bool) ([]domain.User, error) {
	out, err := s.users.List(ctx, activeOnly)
	if err != nil {
		return nil, apperr.Internal("list users failed", err)
	}
	return out, nil
}

func (s *Accounts) Categories() []EnumItem {
	cats := domain.UserCategories()
	out := make([]EnumItem, 0, len(cats))
	for _, c := range cats {
		out = append(out, EnumItem{ID: int(c), Name: c.String()})
	}
	return out
}
