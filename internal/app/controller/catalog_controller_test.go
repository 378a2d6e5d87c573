package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ListsFeaturedProducts(t *testing.T) {
	s := newTestServer(t)

	category := &model.Category{NameEN: "Toys", Slug: "toys"}
	require.NoError(t, s.db.Create(category).Error)
	require.NoError(t, s.db.Create(&model.Product{
		CategoryID: category.ID, TitleEN: "Rope Ball", Price: 9.99, IsFeatured: true,
	}).Error)
	require.NoError(t, s.db.Create(&model.Product{
		CategoryID: category.ID, TitleEN: "Plain Bone", Price: 3.99,
	}).Error)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeJSON(t, rec)
	products := payload["products"].([]interface{})
	require.Len(t, products, 1, "only featured products appear on the landing page")
	assert.Equal(t, "en", payload["lang"])
}

func TestCategoryDetail_UnknownSlugIs404(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/catalog/no-such", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeJSON(t, rec)
	assert.Equal(t, "CATEGORY_NOT_FOUND", payload["error"])
}

func TestProductDetail_ResolvesLanguageFromCookie(t *testing.T) {
	s := newTestServer(t)

	category := &model.Category{NameEN: "Toys", Slug: "toys"}
	require.NoError(t, s.db.Create(category).Error)
	require.NoError(t, s.db.Create(&model.Product{
		CategoryID:     category.ID,
		TitleEN:        "Rope Ball",
		Price:          9.99,
		BulletPointsEN: "Durable",
		BulletPointsZH: "耐用",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/product/1", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LangCookieName, Value: model.LangZH})
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeJSON(t, rec)
	bullets := payload["bullets"].([]interface{})
	require.Len(t, bullets, 1)
	assert.Equal(t, "耐用", bullets[0])
}

func TestProductDetail_BadIDIs400(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/product/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwitchLanguage_SetsCookieAndReturnsToReferer(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/switch-lang/zh", nil)
	req.Header.Set("Referer", "/catalog/toys")
	rec := s.do(req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog/toys", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.LangCookieName, cookies[0].Name)
	assert.Equal(t, model.LangZH, cookies[0].Value)
}

func TestSwitchLanguage_IgnoresUnsupportedLanguage(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/switch-lang/fr", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies(), "unsupported languages never set the cookie")
}
