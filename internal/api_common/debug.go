package api_common

import (
	"github.com/gin-gonic/gin"
)

const (
	DebugHeader = "x-syncstore-debug"
)

// AddGinDebugHeader exposes a message to the caller only when the service runs in debug mode.
func AddGinDebugHeader(cfg Debuggable, gctx *gin.Context, debugMessage string) {
	if cfg != nil && cfg.IsDebugMode() {
		gctx.Header(DebugHeader, debugMessage)
	}
}

func AddGinDebugHeaderError(cfg Debuggable, gctx *gin.Context, err error) {
	AddGinDebugHeader(cfg, gctx, err.Error())
}
