package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"taskmanager/internal/database"
	"taskmanager/internal/middleware"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	db            *gorm.DB
	router        *gin.Engine
	tokenService  *services.TokenService
	authService   *services.AuthService
	userService   *services.UserService
	statusService *services.TaskStatusService
	labelService  *services.LabelService
	taskService   *services.TaskService
}

// setupTestEnv builds an in-memory database and a router with the same
// routes as cmd/server.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.TaskStatus{},
		&models.Label{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewTaskStatusRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokenService := services.NewTokenService(testJWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo, taskRepo)
	statusService := services.NewTaskStatusService(statusRepo, taskRepo)
	labelService := services.NewLabelService(labelRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, statusRepo, labelRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	statusHandler := NewTaskStatusHandler(statusService)
	labelHandler := NewLabelHandler(labelService)
	taskHandler := NewTaskHandler(taskService)

	requireAuth := middleware.RequireAuth(authService, tokenService)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.POST("", userHandler.Create)
			users.PUT("/:id", requireAuth, userHandler.Update)
			users.DELETE("/:id", requireAuth, userHandler.Delete)
		}

		statuses := api.Group("/task_statuses")
		{
			statuses.GET("", statusHandler.List)
			statuses.GET("/:id", statusHandler.Get)
			statuses.POST("", requireAuth, statusHandler.Create)
			statuses.PUT("/:id", requireAuth, statusHandler.Update)
			statuses.DELETE("/:id", requireAuth, statusHandler.Delete)
		}

		labels := api.Group("/labels")
		{
			labels.GET("", labelHandler.List)
			labels.GET("/:id", labelHandler.Get)
			labels.POST("", labelHandler.Create)
			labels.PUT("/:id", labelHandler.Update)
			labels.DELETE("/:id", labelHandler.Delete)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/:id", taskHandler.Get)
			tasks.POST("", taskHandler.Create)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:            db,
		router:        r,
		tokenService:  tokenService,
		authService:   authService,
		userService:   userService,
		statusService: statusService,
		labelService:  labelService,
		taskService:   taskService,
	}
}

// request performs an HTTP request against the test router. A non-empty
// token is sent as a bearer Authorization header.
func (env testEnv) request(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := env.userService.Create(services.CreateUserInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  "supersecret",
	})
	require.NoError(t, err)
	return user
}

func (env testEnv) createStatus(t *testing.T, name, slug string) *models.TaskStatus {
	t.Helper()
	status, err := env.statusService.Create(services.CreateTaskStatusInput{
		Name: name,
		Slug: slug,
	})
	require.NoError(t, err)
	return status
}

func (env testEnv) createLabel(t *testing.T, name string) *models.Label {
	t.Helper()
	label, err := env.labelService.Create(name)
	require.NoError(t, err)
	return label
}

func (env testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := env.tokenService.Issue(email)
	require.NoError(t, err)
	return token
}
