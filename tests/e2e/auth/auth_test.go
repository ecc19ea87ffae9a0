//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"renobooking/internal/domain/user"
	"renobooking/internal/handler/dto/request"
	"renobooking/internal/handler/dto/response"
	"renobooking/tests/common/authtest"
	"renobooking/tests/common/dbtest"
	"renobooking/tests/common/httptest"
	"renobooking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestAdmin(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestAdmin(s.T(), s.DB, "inactive@example.com", string(user.RoleAdmin))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE admin_users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: valid credentials",
			email:          "staff@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: wrong password",
			email:          "staff@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Error case: empty password",
			email:          "staff@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, tt.email, res.User.Email)
				require.Equal(t, string(user.RoleStaff), res.User.Role)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				require.Equal(t, res.AccessToken, accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: token identifies the logged in user", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var claims map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &claims))
		require.NotEmpty(t, claims["id"])
		require.Equal(t, string(user.RoleStaff), claims["role"])
	})

	s.Run("Error case: missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-token")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: logout clears the cookie", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}
