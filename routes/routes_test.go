package routes_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobazaar/dto"
	"autobazaar/models"
	"autobazaar/routes"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code  int             `json:"code"`
	Mess  string          `json:"mess"`
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *memStore
	tokens *services.TokenService
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	tokens := services.NewTokenService("test-secret", time.Hour)

	handlers := routes.NewHandlers(routes.Options{
		Users:    memUsers{store},
		Ads:      memAds{store},
		Rates:    memRates{store},
		Comments: memComments{store},
		Tokens:   tokens,
		Hasher:   services.NewBcryptHasher(4),
		Revoker:  &memRevoker{revoked: map[string]bool{}},
		Location: time.UTC,
	})
	router := gin.New()
	require.NoError(t, routes.SetupRoutes(router, handlers))
	return &testServer{t: t, router: router, store: store, tokens: tokens}
}

func (s *testServer) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *testServer) signUp(name, email, password string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/users/sign-up", gin.H{"name": name, "email": email, "password": password}, "")
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var tok dto.TokenResponse
	decode(s.t, w, &tok)
	return tok.Token
}

func (s *testServer) userIDOf(token string) uint {
	claims, err := s.tokens.Parse(token)
	require.NoError(s.t, err)
	return claims.UserInfo.UserId
}

func adBody(userID uint) gin.H {
	return gin.H{
		"technicalInfo": "1.5 turbo",
		"address":       "12 Le Loi",
		"mobileNum":     "0900000000",
		"city":          "Hue",
		"carName":       "Civic",
		"picsUrl":       "https://cdn.example.com/civic.jpg",
		"price":         25000,
		"date":          time.Now().UTC().Format("2006-01-02"),
		"year":          2019,
		"model":         "RS",
		"brand":         "Honda",
		"color":         "white",
		"userId":        userID,
	}
}

func (s *testServer) createAd(userID uint) uint {
	s.t.Helper()
	w := s.do(http.MethodPost, "/ads", adBody(userID), "")
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.AdCreatedResponse
	env := decode(s.t, w, &created)
	assert.Equal(s.t, "Ad created successfully", env.Mess)
	return created.ID
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestSignUpAndLogin(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("Ann", "Ann@Example.com", "s3cret")
	assert.NotEmpty(t, token)

	w := s.do(http.MethodPost, "/users/sign-up", gin.H{"name": "Ann", "email": "ann@example.com", "password": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/users/login", gin.H{"email": "ann@example.com", "password": "s3cret"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var tok dto.TokenResponse
	decode(t, w, &tok)
	claims, err := s.tokens.Parse(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", claims.UserInfo.Email)
	assert.Equal(t, models.RoleUser, claims.UserInfo.Role)

	for _, body := range []gin.H{
		{"email": "ann@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "s3cret"},
	} {
		w = s.do(http.MethodPost, "/users/login", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "user not found!", decode(t, w, nil).Mess)
	}
}

func TestUserProfileEndpoints(t *testing.T) {
	s := newTestServer(t)
	id := s.userIDOf(s.signUp("Ann", "ann@example.com", "s3cret"))

	w := s.do(http.MethodGet, "/users/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/users/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/users/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	var flag dto.GoogleFlagResponse
	decode(t, s.do(http.MethodGet, "/users/1/isRegisteredByGoogle", nil, ""), &flag)
	assert.False(t, flag.Google)

	w = s.do(http.MethodPatch, "/users/1", gin.H{"phone": "0911", "address": "Hue"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var info dto.UserInfoResponse
	decode(t, s.do(http.MethodGet, "/users/1/info", nil, ""), &info)
	require.NotNil(t, info.Phone)
	assert.Equal(t, "0911", *info.Phone)
	assert.Equal(t, uint(1), id)

	w = s.do(http.MethodPatch, "/users/1", gin.H{"password": "new", "oldPassword": "bad"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("Ann", "ann@example.com", "s3cret")

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodDelete, "/users/logout", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/users/logout", nil, token).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodDelete, "/users/logout", nil, token).Code)
}

func TestCreateAd(t *testing.T) {
	s := newTestServer(t)
	owner := s.userIDOf(s.signUp("Ann", "ann@example.com", "s3cret"))
	adID := s.createAd(owner)

	var ad models.Ad
	decode(t, s.do(http.MethodGet, fmt.Sprintf("/ads/%d", adID), nil, ""), &ad)
	assert.Equal(t, adID, ad.ID)
	assert.Equal(t, 1, ad.Status)

	hidden := adBody(owner)
	hidden["status"] = 0
	hidden["distance"] = 42000
	hidden["accidental"] = true
	w := s.do(http.MethodPost, "/ads", hidden, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.AdCreatedResponse
	decode(t, w, &created)
	var stored models.Ad
	decode(t, s.do(http.MethodGet, fmt.Sprintf("/ads/%d", created.ID), nil, ""), &stored)
	assert.Equal(t, 0, stored.Status)
	assert.Equal(t, 42000, stored.Distance)
	assert.True(t, stored.Accidental)
	assert.Equal(t, "Civic", stored.CarName)
	assert.Equal(t, 25000.0, stored.Price)
	assert.Equal(t, owner, stored.UserID)

	w = s.do(http.MethodPost, "/ads", adBody(999), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	invalid := adBody(owner)
	delete(invalid, "carName")
	w = s.do(http.MethodPost, "/ads", invalid, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Failed to create ad"}`, w.Body.String())
}

func TestUpdateAdOwnership(t *testing.T) {
	s := newTestServer(t)
	owner := s.userIDOf(s.signUp("Ann", "ann@example.com", "s3cret"))
	other := s.userIDOf(s.signUp("Bob", "bob@example.com", "s3cret"))
	adID := s.createAd(owner)

	w := s.do(http.MethodPatch, fmt.Sprintf("/ads/%d", adID), gin.H{"userId": other, "color": "red"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, fmt.Sprintf("/ads/%d", adID), gin.H{"userId": owner, "color": "red"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var ad models.Ad
	decode(t, w, &ad)
	assert.Equal(t, adID, ad.ID)
	assert.Equal(t, "red", ad.Color)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPatch, "/ads/77", gin.H{"userId": owner}, "").Code)

	w = s.do(http.MethodPatch, fmt.Sprintf("/ads/%d/status", adID), gin.H{"status": 2}, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &ad)
	assert.Equal(t, 2, ad.Status)
}

func TestSearchAds(t *testing.T) {
	s := newTestServer(t)
	owner := s.userIDOf(s.signUp("Ann", "ann@example.com", "s3cret"))
	s.createAd(owner)

	var ads []models.Ad
	env := decode(t, s.do(http.MethodGet, "/ads/search?q=honda&city=Hue", nil, ""), &ads)
	assert.Equal(t, 1, env.Total)

	env = decode(t, s.do(http.MethodGet, "/ads/search?q=hnda", nil, ""), &ads)
	assert.Equal(t, 1, env.Total)

	env = decode(t, s.do(http.MethodGet, "/ads/search?q=honda&city=Hanoi", nil, ""), nil)
	assert.Zero(t, env.Total)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/ads/search?status=abc", nil, "").Code)
}

func TestRatesFlow(t *testing.T) {
	s := newTestServer(t)
	ann := s.userIDOf(s.signUp("Ann", "ann@example.com", "s3cret"))
	bob := s.userIDOf(s.signUp("Bob", "bob@example.com", "s3cret"))
	adID := s.createAd(ann)

	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/rates", gin.H{"userId": ann, "adId": adID, "score": 5}, "").Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/rates", gin.H{"userId": bob, "adId": adID, "score": 3}, "").Code)
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/rates", gin.H{"userId": bob, "adId": adID, "score": 4}, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/rates", gin.H{"userId": bob, "adId": adID, "score": 6}, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/rates", gin.H{"userId": bob, "adId": 999, "score": 4}, "").Code)

	carl := s.userIDOf(s.signUp("Carl", "carl@example.com", "s3cret"))
	w := s.do(http.MethodPost, "/rates", gin.H{"userId": carl, "adId": adID}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid rate data")
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/rates", gin.H{"userId": carl, "adId": adID, "score": 0}, "").Code)
	assert.Len(t, s.store.rates, 2)

	var avg dto.AverageRateResponse
	decode(t, s.do(http.MethodGet, fmt.Sprintf("/rates/%d/average", adID), nil, ""), &avg)
	assert.Equal(t, 4.0, avg.AverageRate)

	var unique dto.UniqueUsersResponse
	decode(t, s.do(http.MethodGet, fmt.Sprintf("/rates/%d/unique-users", adID), nil, ""), &unique)
	assert.Equal(t, 2, unique.UniqueUsers)

	var lookup dto.RateLookupResponse
	decode(t, s.do(http.MethodGet, fmt.Sprintf("/rates/%d/user/%d", adID, bob), nil, ""), &lookup)
	assert.True(t, lookup.Rated)
	require.NotNil(t, lookup.Score)
	assert.Equal(t, 3, *lookup.Score)

	w = s.do(http.MethodGet, fmt.Sprintf("/rates/%d/user/42", adID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &lookup)
	assert.False(t, lookup.Rated)
	assert.Equal(t, "Not rated yet for this product", lookup.Message)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/rates/999/average", nil, "").Code)
}

func TestCommentsFlow(t *testing.T) {
	s := newTestServer(t)
	ann := s.userIDOf(s.signUp("Ann", "ann@example.com", "s3cret"))
	adID := s.createAd(ann)

	w := s.do(http.MethodPost, "/comments", gin.H{"userId": ann, "adId": adID, "comment": "clean car"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Comment
	decode(t, w, &created)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/comments", gin.H{"userId": ann, "adId": adID, "comment": "again"}, "").Code)

	var list []dto.CommentWithUser
	env := decode(t, s.do(http.MethodGet, fmt.Sprintf("/comments/%d/comments", adID), nil, ""), &list)
	assert.Equal(t, 1, env.Total)
	assert.Equal(t, "Ann", list[0].UserName)
	assert.Equal(t, "clean car", list[0].Comment.Comment)

	var lookup dto.CommentLookupResponse
	decode(t, s.do(http.MethodGet, fmt.Sprintf("/comments/%d/user/%d", adID, ann), nil, ""), &lookup)
	assert.True(t, lookup.Commented)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/comments/%d", created.ID), nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/comments/%d", created.ID), nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, fmt.Sprintf("/comments/%d", created.ID), nil, "").Code)
}

// staff tạo user trực tiếp trong store với role cho trước và trả về token của user đó
func (s *testServer) staff(name, email string, role models.Role) (uint, string) {
	s.t.Helper()
	user := &models.User{Name: name, Email: email, Role: role}
	require.NoError(s.t, memUsers{s.store}.Create(context.Background(), user))
	token, err := s.tokens.Issue(user)
	require.NoError(s.t, err)
	return user.ID, token
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	annToken := s.signUp("Ann", "ann@example.com", "s3cret")
	ann := s.userIDOf(annToken)
	bob := s.userIDOf(s.signUp("Bob", "bob@example.com", "s3cret"))
	first := s.createAd(ann)
	second := s.createAd(ann)
	s.do(http.MethodPost, "/rates", gin.H{"userId": bob, "adId": first, "score": 5}, "")
	s.do(http.MethodPost, "/rates", gin.H{"userId": bob, "adId": second, "score": 2}, "")

	_, adminToken := s.staff("Root", "root@example.com", models.RoleAdmin)
	_, modToken := s.staff("Mod", "mod@example.com", models.RoleModerator)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/admin/user-count", nil, "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/admin/user-count", nil, annToken).Code)

	var count struct {
		Count int64 `json:"count"`
	}
	decode(t, s.do(http.MethodGet, "/admin/user-count", nil, modToken), &count)
	assert.Equal(t, int64(4), count.Count)
	decode(t, s.do(http.MethodGet, "/admin/ad-count", nil, adminToken), &count)
	assert.Equal(t, int64(2), count.Count)
	decode(t, s.do(http.MethodGet, "/admin/today-ads", nil, adminToken), &count)
	assert.Equal(t, int64(2), count.Count)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/admin/today-ads?date=bad", nil, adminToken).Code)

	var ranked []dto.AdWithAverageRate
	decode(t, s.do(http.MethodGet, "/admin/ads-with-average-rate", nil, adminToken), &ranked)
	require.Len(t, ranked, 2)
	assert.Equal(t, second, ranked[0].ID)
	assert.Equal(t, 2.0, ranked[0].AverageRate)
	assert.Equal(t, first, ranked[1].ID)

	var users []dto.UserResponse
	env := decode(t, s.do(http.MethodGet, "/admin/all-users", nil, adminToken), &users)
	assert.Equal(t, 4, env.Total)
	assert.NotContains(t, s.do(http.MethodGet, "/admin/all-users", nil, adminToken).Body.String(), "password")

	rolePath := fmt.Sprintf("/admin/user/%d/role", bob)
	banPath := fmt.Sprintf("/admin/user/%d/banned-status", bob)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPatch, rolePath, gin.H{"role": "admin"}, modToken).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPatch, rolePath, gin.H{"role": "root"}, adminToken).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPatch, rolePath, gin.H{"role": "moderator"}, adminToken).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPatch, banPath, gin.H{}, adminToken).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPatch, "/admin/user/999/banned-status", gin.H{"isBanned": true}, adminToken).Code)

	w := s.do(http.MethodPatch, banPath, gin.H{"isBanned": true}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.UserResponse
	decode(t, w, &updated)
	assert.Equal(t, "moderator", updated.Role)
	assert.True(t, updated.IsBanned)

	w = s.do(http.MethodPost, "/users/login", gin.H{"email": "bob@example.com", "password": "s3cret"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoutes_StaffChangesApplyToIssuedTokens(t *testing.T) {
	s := newTestServer(t)
	_, rootToken := s.staff("Root", "root@example.com", models.RoleAdmin)
	cid, cidToken := s.staff("Cid", "cid@example.com", models.RoleAdmin)
	mod, modToken := s.staff("Mod", "mod@example.com", models.RoleModerator)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/admin/user-count", nil, cidToken).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/admin/user-count", nil, modToken).Code)

	// token của Cid vẫn mang role admin sau khi bị hạ xuống user
	demote := s.do(http.MethodPatch, fmt.Sprintf("/admin/user/%d/role", cid), gin.H{"role": "user"}, rootToken)
	require.Equal(t, http.StatusOK, demote.Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/admin/user-count", nil, cidToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPatch, fmt.Sprintf("/admin/user/%d/banned-status", mod), gin.H{"isBanned": true}, cidToken).Code)

	ban := s.do(http.MethodPatch, fmt.Sprintf("/admin/user/%d/banned-status", mod), gin.H{"isBanned": true}, rootToken)
	require.Equal(t, http.StatusOK, ban.Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/admin/user-count", nil, modToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/users/logout", nil, modToken).Code)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/users/%d", cid), nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodDelete, "/users/logout", nil, cidToken).Code)
}
