package api

import (
	"errors"
	"strconv"

	"navsite/database"
	"navsite/models"

	"github.com/gin-gonic/gin"
)

// NavHandler 前台导航页数据
type NavHandler struct {
	store *database.Store
}

// NewNavHandler 创建导航处理器
func NewNavHandler(store *database.Store) *NavHandler {
	return &NavHandler{store: store}
}

// Menus 菜单树（含子菜单和卡片）
func (h *NavHandler) Menus(c *gin.Context) {
	menus, err := h.store.MenuTree()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询菜单失败"))
		return
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	Success(c, menus)
}

// Ads 广告列表，可按 position=left|right 过滤
func (h *NavHandler) Ads(c *gin.Context) {
	position := c.Query("position")
	if position != "" && !models.IsValidAdPosition(position) {
		BadRequest(c, "position 只能为 left 或 right")
		return
	}
	ads, err := h.store.ListAds(position)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询广告失败"))
		return
	}
	if ads == nil {
		ads = []models.Ad{}
	}
	Success(c, ads)
}

// Friends 友情链接
func (h *NavHandler) Friends(c *gin.Context) {
	friends, err := h.store.ListFriends()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询友情链接失败"))
		return
	}
	if friends == nil {
		friends = []models.Friend{}
	}
	Success(c, friends)
}

// DeleteMenu 删除菜单，子菜单和卡片一并删除（需登录）
func (h *NavHandler) DeleteMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的菜单ID")
		return
	}
	if err := h.store.DeleteMenu(uint(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			NotFound(c, "菜单不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除菜单失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
