package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"taskmanager/internal/dto"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	env testEnv
}

// SetupTest runs before each test
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	body := []byte(`{
		"email": "john@example.com",
		"first_name": "John",
		"last_name": "Doe",
		"password": "secret"
	}`)

	w := suite.env.request(http.MethodPost, "/api/users", body, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("john@example.com", response.Email)
	suite.Equal("John", response.FirstName)
	suite.Equal("Doe", response.LastName)
	suite.NotZero(response.ID)
	suite.False(response.CreatedAt.IsZero())
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateEmail() {
	suite.env.createUser(suite.T(), "john@example.com")

	body := []byte(`{"email": "john@example.com", "password": "secret"}`)
	w := suite.env.request(http.MethodPost, "/api/users", body, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser_ShortPassword() {
	body := []byte(`{"email": "john@example.com", "password": "ab"}`)
	w := suite.env.request(http.MethodPost, "/api/users", body, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser_MalformedEmail() {
	body := []byte(`{"email": "not-an-email", "password": "secret"}`)
	w := suite.env.request(http.MethodPost, "/api/users", body, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.env.createUser(suite.T(), "a@example.com")
	suite.env.createUser(suite.T(), "b@example.com")

	w := suite.env.request(http.MethodGet, "/api/users", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-Total-Count"))

	var response []dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 2)
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	w := suite.env.request(http.MethodGet, "/api/users/999", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_Partial() {
	user := suite.env.createUser(suite.T(), "john@example.com")
	token := suite.env.tokenFor(suite.T(), user.Email)

	// Only first_name is sent; everything else must survive.
	body := []byte(`{"first_name": "Johnny"}`)
	w := suite.env.request(http.MethodPut, "/api/users/1", body, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Johnny", response.FirstName)
	suite.Equal("john@example.com", response.Email)
	suite.Equal("User", response.LastName)

	// The old password still works.
	loginBody := []byte(`{"email": "john@example.com", "password": "supersecret"}`)
	w = suite.env.request(http.MethodPost, "/api/login", loginBody, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_PasswordRehashed() {
	user := suite.env.createUser(suite.T(), "john@example.com")
	token := suite.env.tokenFor(suite.T(), user.Email)

	body := []byte(`{"password": "newsecret"}`)
	w := suite.env.request(http.MethodPut, "/api/users/1", body, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	loginBody := []byte(`{"email": "john@example.com", "password": "newsecret"}`)
	w = suite.env.request(http.MethodPost, "/api/login", loginBody, "")
	suite.Equal(http.StatusOK, w.Code)

	loginBody = []byte(`{"email": "john@example.com", "password": "supersecret"}`)
	w = suite.env.request(http.MethodPost, "/api/login", loginBody, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_Forbidden() {
	suite.env.createUser(suite.T(), "owner@example.com")
	other := suite.env.createUser(suite.T(), "other@example.com")
	token := suite.env.tokenFor(suite.T(), other.Email)

	body := []byte(`{"first_name": "Hacked"}`)
	w := suite.env.request(http.MethodPut, "/api/users/1", body, token)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_Unauthenticated() {
	suite.env.createUser(suite.T(), "owner@example.com")

	body := []byte(`{"first_name": "Johnny"}`)
	w := suite.env.request(http.MethodPut, "/api/users/1", body, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	user := suite.env.createUser(suite.T(), "john@example.com")
	token := suite.env.tokenFor(suite.T(), user.Email)

	w := suite.env.request(http.MethodDelete, "/api/users/1", nil, token)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	w = suite.env.request(http.MethodGet, "/api/users/1", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_Forbidden() {
	suite.env.createUser(suite.T(), "owner@example.com")
	other := suite.env.createUser(suite.T(), "other@example.com")
	token := suite.env.tokenFor(suite.T(), other.Email)

	w := suite.env.request(http.MethodDelete, "/api/users/1", nil, token)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_ReferencedByTask() {
	user := suite.env.createUser(suite.T(), "assignee@example.com")
	suite.env.createStatus(suite.T(), "Draft", "draft")
	token := suite.env.tokenFor(suite.T(), user.Email)

	body := []byte(`{"title": "Write report", "status": "draft", "assignee_id": 1}`)
	w := suite.env.request(http.MethodPost, "/api/tasks", body, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.env.request(http.MethodDelete, "/api/users/1", nil, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	// Still there.
	w = suite.env.request(http.MethodGet, "/api/users/1", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
