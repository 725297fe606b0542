package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paranoid-users/internal/core/auth"
	mdw "paranoid-users/internal/transport/http/middleware"
)

// NewAdminEngine 管理端：/admin/v1，统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, reg *Registry, jwter *auth.JWTer, o Options) *gin.Engine {
	r := newEngine(l, "admin", o, true)
	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, auth.RoleAdmin))
	reg.MountAllAdmin(admin)
	return r
}
