package handlers

import (
	"context"
	"net/http"
	"sync"

	"faqdesk/internal/models"
	"faqdesk/internal/service"
	"faqdesk/internal/translator"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       string
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (models.User, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockFAQ struct {
	mu sync.Mutex

	list []models.FAQ
	faq  models.FAQ
	err  error

	calls      int
	lastID     string
	lastFields models.FAQFields
}

func (m *mockFAQ) setList(list []models.FAQ) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = list
}

func (m *mockFAQ) ListAll(context.Context) ([]models.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.list, m.err
}
func (m *mockFAQ) GetByID(_ context.Context, id string) (models.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastID = id
	return m.faq, m.err
}
func (m *mockFAQ) Create(_ context.Context, f models.FAQFields) (models.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastFields = f
	return m.faq, m.err
}
func (m *mockFAQ) Replace(_ context.Context, id string, f models.FAQFields) (models.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastID = id
	m.lastFields = f
	return m.faq, m.err
}
func (m *mockFAQ) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastID = id
	return m.err
}

type mockTranslation struct {
	resp translator.Response
	err  error

	lastText   string
	lastTarget string
}

func (m *mockTranslation) Detect(_ context.Context, text string) (translator.Response, error) {
	m.lastText = text
	return m.resp, m.err
}
func (m *mockTranslation) Translate(_ context.Context, text, target string) (translator.Response, error) {
	m.lastText = text
	m.lastTarget = target
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{})
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
