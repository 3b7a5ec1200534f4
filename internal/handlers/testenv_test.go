package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/constants"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/database"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/middleware"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/repository"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/storage"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// captureMailer records outbound mail instead of delivering it.
type captureMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *captureMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	mailer       *captureMailer
	pictureDir   string
	tokens       *services.ResetTokenService
	authService  *services.AuthService
	postService  *services.PostService
	userRepo     repository.UserRepository
	firmRepo     repository.FirmRepository
	productRepo  repository.ProductRepository
	postRepo     repository.PostRepository
	resetService *services.PasswordResetService
}

// setupTestEnv boots an in-memory database and the full route table.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Firm{},
		&models.Product{},
		&models.Post{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	firmRepo := repository.NewFirmRepository(db)
	productRepo := repository.NewProductRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := services.NewAuthService(userRepo)
	tokens := services.NewResetTokenService("test-signing-key", 30*time.Minute)
	mailer := &captureMailer{}
	resetService := services.NewPasswordResetService(userRepo, tokens, mailer, "http://localhost:8080")
	postService := services.NewPostService(postRepo, productRepo)
	directoryService := services.NewDirectoryService(firmRepo, productRepo)
	pictureDir := t.TempDir()
	pictures := storage.NewPictureStore(pictureDir)

	cookieOpts := sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	pagesHandler := NewPagesHandler()
	authHandler := NewAuthHandler(authService, cookieOpts)
	accountHandler := NewAccountHandler(authService, postService, pictures)
	resetHandler := NewPasswordResetHandler(resetService, authService)
	directoryHandler := NewDirectoryHandler(directoryService)
	postHandler := NewPostHandler(postService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	store.Options(cookieOpts)
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/", pagesHandler.Home)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/contact", pagesHandler.ShowContact)
	r.POST("/contact", pagesHandler.Contact)
	r.GET("/firm/:name", directoryHandler.FirmPage)
	r.GET("/reset_password", resetHandler.ShowRequest)
	r.POST("/reset_password", resetHandler.Request)
	r.GET("/reset_password/:token", resetHandler.ShowConfirm)
	r.POST("/reset_password/:token", resetHandler.Confirm)
	r.GET("/db-search", directoryHandler.Search)
	r.GET("/post/:id", postHandler.ShowPost)

	r.GET("/account", middleware.RequireAuth(), accountHandler.Show)
	r.POST("/account", middleware.RequireAuth(), accountHandler.Update)
	r.GET("/product/:id", middleware.RequireAuth(), directoryHandler.ProductPage)
	r.GET("/post/new", middleware.RequireAuth(), postHandler.NewPostPage)
	r.POST("/post/new", middleware.RequireAuth(), postHandler.CreatePost)
	r.GET("/post/:id/update", middleware.RequireAuth(), postHandler.EditPostPage)
	r.POST("/post/:id/update", middleware.RequireAuth(), postHandler.UpdatePost)
	r.POST("/post/:id/delete", middleware.RequireAuth(), postHandler.DeletePost)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:           db,
		router:       r,
		mailer:       mailer,
		pictureDir:   pictureDir,
		tokens:       tokens,
		authService:  authService,
		postService:  postService,
		userRepo:     userRepo,
		firmRepo:     firmRepo,
		productRepo:  productRepo,
		postRepo:     postRepo,
		resetService: resetService,
	}
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// postForm submits a form-encoded POST, optionally with session cookies.
func (env *testEnv) postForm(t *testing.T, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// postMultipart submits a multipart form with one attached file.
func (env *testEnv) postMultipart(t *testing.T, path string, fields map[string]string, fileField, filename string, content []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// get performs a GET, optionally with session cookies.
func (env *testEnv) get(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account directly through the service.
func (env *testEnv) registerUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()
	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// loginAs logs in over HTTP and returns the session cookies.
func (env *testEnv) loginAs(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()
	w := env.postForm(t, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}
