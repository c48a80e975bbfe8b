package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/yukikurage/task-manager-api/internal/auth"
	"github.com/yukikurage/task-manager-api/internal/config"
	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/middleware"
	"github.com/yukikurage/task-manager-api/internal/services"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Users        *services.UserService
	TaskStatuses *services.TaskStatusService
	Labels       *services.LabelService
	Tasks        *services.TaskService
	Auth         *services.AuthService
}

// NewRouter builds the HTTP API. Everything under the base path except
// login and signup requires a bearer token.
func NewRouter(routes config.RoutesConfig, svc Services, tokens auth.TokenService, log *zap.Logger) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			return nil, err
		}
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/welcome", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Task Manager!")
	})

	authHandler := NewAuthHandler(svc.Auth, svc.Users, log)
	r.POST(routes.Path(routes.Login), authHandler.Login)
	r.POST(routes.Path(routes.Signup), authHandler.Signup)

	requireAuth := middleware.RequireAuth(tokens)
	NewResourceHandler[dto.UserDTO, dto.UserCreateRequest, dto.UserUpdateRequest](svc.Users, log).
		Register(r.Group(routes.Path(routes.Users), requireAuth))
	NewResourceHandler[dto.TaskStatusDTO, dto.TaskStatusCreateRequest, dto.TaskStatusUpdateRequest](svc.TaskStatuses, log).
		Register(r.Group(routes.Path(routes.TaskStatuses), requireAuth))
	NewResourceHandler[dto.LabelDTO, dto.LabelCreateRequest, dto.LabelUpdateRequest](svc.Labels, log).
		Register(r.Group(routes.Path(routes.Labels), requireAuth))
	NewResourceHandler[dto.TaskDTO, dto.TaskCreateRequest, dto.TaskUpdateRequest](svc.Tasks, log).
		Register(r.Group(routes.Path(routes.Tasks), requireAuth))

	return r, nil
}
