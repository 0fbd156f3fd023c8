package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/pkg/apperr"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// respondServiceError mapeia um erro do orquestrador para a resposta
// HTTP. Erros internos vão para o log; os demais voltam com a mensagem
// e a classificação para o cliente tratar.
func respondServiceError(ctx *gin.Context, log logger.Logger, action string, err error) {
	code := apperr.StatusCode(err)
	if code == http.StatusInternalServerError {
		log.Error(action, "error", err)
	}
	ctx.JSON(code, dto.NewErrorResponse(code, apperr.Message(err), string(apperr.KindOf(err))))
}
