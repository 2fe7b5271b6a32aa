package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/api/controller"
	"github.com/olprod/olprod-backend/bootstrap"
	"github.com/olprod/olprod-backend/usecase"
)

func NewChatRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	group *gin.RouterGroup,
) {
	uc := usecase.NewChatUsecase(usecase.ChatConfig{
		APIKey:  env.OpenAIAPIKey,
		BaseURL: env.OpenAIBaseURL,
		Model:   env.OpenAIModel,
	}, timeout)
	ctrl := controller.NewChatController(uc)

	group.POST("/support/chat", ctrl.Complete)
}
