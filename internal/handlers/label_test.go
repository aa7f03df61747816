package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"taskmanager/internal/dto"
)

// LabelHandlerTestSuite defines the test suite for LabelHandler
type LabelHandlerTestSuite struct {
	suite.Suite
	env testEnv
}

// SetupTest runs before each test
func (suite *LabelHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
}

func (suite *LabelHandlerTestSuite) TestCreateLabel() {
	body := []byte(`{"name": "bug"}`)
	w := suite.env.request(http.MethodPost, "/api/labels", body, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response dto.LabelDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("bug", response.Name)
	suite.NotZero(response.ID)
}

func (suite *LabelHandlerTestSuite) TestCreateLabel_NameTooShort() {
	body := []byte(`{"name": "ab"}`)
	w := suite.env.request(http.MethodPost, "/api/labels", body, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LabelHandlerTestSuite) TestCreateLabel_DuplicateName() {
	suite.env.createLabel(suite.T(), "bug")

	body := []byte(`{"name": "bug"}`)
	w := suite.env.request(http.MethodPost, "/api/labels", body, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LabelHandlerTestSuite) TestListLabels() {
	suite.env.createLabel(suite.T(), "bug")
	suite.env.createLabel(suite.T(), "feature")

	w := suite.env.request(http.MethodGet, "/api/labels", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-Total-Count"))

	var response []dto.LabelDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 2)
}

func (suite *LabelHandlerTestSuite) TestUpdateLabel() {
	suite.env.createLabel(suite.T(), "bug")

	body := []byte(`{"name": "defect"}`)
	w := suite.env.request(http.MethodPut, "/api/labels/1", body, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.LabelDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("defect", response.Name)
}

func (suite *LabelHandlerTestSuite) TestDeleteLabel() {
	suite.env.createLabel(suite.T(), "bug")

	w := suite.env.request(http.MethodDelete, "/api/labels/1", nil, "")
	suite.Require().Equal(http.StatusNoContent, w.Code)

	w = suite.env.request(http.MethodGet, "/api/labels/1", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LabelHandlerTestSuite) TestDeleteLabel_ReferencedByTask() {
	suite.env.createUser(suite.T(), "assignee@example.com")
	suite.env.createStatus(suite.T(), "Draft", "draft")
	suite.env.createLabel(suite.T(), "bug")

	body := []byte(`{"title": "Fix crash", "status": "draft", "assignee_id": 1, "taskLabelIds": [1]}`)
	w := suite.env.request(http.MethodPost, "/api/tasks", body, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.env.request(http.MethodDelete, "/api/labels/1", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestLabelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LabelHandlerTestSuite))
}
