package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAPIEngine 用户端：/api/v1，无需登录
func NewAPIEngine(l *zap.Logger, reg *Registry, o Options) *gin.Engine {
	r := newEngine(l, "api", o, false)
	reg.MountAllAPI(r.Group("/api/v1"))
	return r
}
