package api

import (
	"errors"
	"log"
	"time"

	"navsite/config"
	"navsite/database"
	"navsite/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 管理员认证处理器
type AuthHandler struct {
	cfg   *config.Config
	store *database.Store
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, store *database.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: store}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应，附带上一次登录信息
type LoginResponse struct {
	Token         string     `json:"token"`
	Username      string     `json:"username"`
	LastLoginTime *string `json:"last_login_time"`
	LastLoginIP   *string `json:"last_login_ip"`
}

// Login 管理员登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误")
		return
	}

	user, err := h.store.FindUserByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			log.Printf("查询用户失败: %v", err)
		}
		Unauthorized(c, "用户名或密码错误")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	// 记录本次登录，失败不影响登录结果
	if err := h.store.RecordLogin(user.ID, c.ClientIP(), time.Now()); err != nil {
		log.Printf("记录登录信息失败: %v", err)
	}

	SuccessWithMessage(c, "登录成功", LoginResponse{
		Token:         token,
		Username:      user.Username,
		LastLoginTime: user.LastLoginTime,
		LastLoginIP:   user.LastLoginIP,
	})
}

// Profile 当前管理员信息
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.store.FindUserByID(middleware.GetCurrentUserID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}
	Success(c, user)
}
