package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rekib0023/expense-sharing-backend/internal/handlers"
	"github.com/rekib0023/expense-sharing-backend/internal/logger"
	"github.com/rekib0023/expense-sharing-backend/internal/middleware"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/services"
	"github.com/rekib0023/expense-sharing-backend/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db, categoryService)
	chartService := services.NewChartService(db)
	groupService := services.NewGroupService(db, userService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	chartHandler := handlers.NewChartHandler(chartService)
	groupHandler := handlers.NewGroupHandler(groupService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/refresh", authHandler.Refresh)
	auth.GET("/logout", middleware.RequireUser(userService), authHandler.Logout)

	protected := api.Group("/")
	protected.Use(middleware.RequireUser(userService))

	user := protected.Group("/user")
	user.GET("/me", userHandler.Me)
	user.GET("/all", userHandler.All)

	expense := protected.Group("/expense")
	expense.POST("/category", categoryHandler.CreateCategory)
	expense.GET("/categories", categoryHandler.GetCategories)
	expense.GET("/category/:id", categoryHandler.GetCategoryByID)
	expense.POST("/", expenseHandler.CreateExpense)
	expense.GET("/", expenseHandler.GetExpenses)
	expense.GET("/group", expenseHandler.GroupExpenses)
	expense.GET("/:id", expenseHandler.GetExpenseByID)
	expense.PUT("/:id", expenseHandler.UpdateExpense)
	expense.DELETE("/:id", expenseHandler.DeleteExpense)

	charts := protected.Group("/charts")
	charts.GET("/category_expense", chartHandler.CategoryExpense)

	group := protected.Group("/group")
	group.POST("", groupHandler.CreateGroup)
	group.GET("", groupHandler.GetGroups)
	group.GET("/:id", groupHandler.GetGroupByID)
	group.POST("/:id/member", groupHandler.AddMember)
	group.GET("/:id/members", groupHandler.GetMembers)

	protected.POST("/friend", groupHandler.AddFriend)
	protected.GET("/friends", groupHandler.GetFriends)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// requestWithCookies makes a request carrying the given cookies instead of a
// bearer header.
func (app *testApp) requestWithCookies(method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signupUser registers a new user and returns the access token plus the
// session cookies set on the response.
func (app *testApp) signupUser(t *testing.T, email, password string) (string, []*http.Cookie) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/auth/signup", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), rec.Result().Cookies()
}

// loginUser logs in and returns the access token plus the session cookies.
func (app *testApp) loginUser(t *testing.T, email, password string) (string, []*http.Cookie) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), rec.Result().Cookies()
}

// createCategory creates an expense category and returns its ID.
func (app *testApp) createCategory(t *testing.T, token, name string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/expense/category", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	category := result["category"].(map[string]interface{})
	return category["id"].(float64)
}

// createExpense creates an expense and returns its ID.
func (app *testApp) createExpense(t *testing.T, token, name string, amount float64, categoryID float64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"amount":%v,"category_id":%v}`, name, amount, categoryID)
	rec := app.request("POST", "/api/expense/", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	expense := result["expense"].(map[string]interface{})
	return expense["id"].(float64)
}
