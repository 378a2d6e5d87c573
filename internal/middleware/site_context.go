package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
)

// Context keys for the per-request site context.
const (
	LangKey          = "lang"
	NavCategoriesKey = "nav_categories"
	SettingsKey      = "site_settings"

	// LangCookieName persists the visitor's language choice.
	LangCookieName = "lang"
)

// SiteContext populates every request with the language preference, the
// navigation categories and the settings map, all read fresh from the
// database. Handlers receive them through the typed accessors below
// instead of ambient globals.
func SiteContext(categoryRepo repository.CategoryRepository, settingRepo repository.SettingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, err := c.Cookie(LangCookieName)
		if err != nil || (lang != model.LangEN && lang != model.LangZH) {
			lang = model.LangEN
		}
		c.Set(LangKey, lang)

		log := GetLoggerFromContext(c)

		categories, err := categoryRepo.FindAll()
		if err != nil {
			log.Error("Failed to load navigation categories", err)
			categories = nil
		}
		c.Set(NavCategoriesKey, categories)

		settings, err := settingRepo.GetAll()
		if err != nil {
			log.Error("Failed to load site settings", err)
			settings = map[string]string{}
		}
		c.Set(SettingsKey, settings)

		c.Next()
	}
}

// GetLang returns the active language for the request.
func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(LangKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return model.LangEN
}

// GetNavCategories returns the navigation categories loaded for the request.
func GetNavCategories(c *gin.Context) []model.Category {
	if v, exists := c.Get(NavCategoriesKey); exists {
		if categories, ok := v.([]model.Category); ok {
			return categories
		}
	}
	return nil
}

// GetSettings returns the settings map loaded for the request.
func GetSettings(c *gin.Context) map[string]string {
	if v, exists := c.Get(SettingsKey); exists {
		if settings, ok := v.(map[string]string); ok {
			return settings
		}
	}
	return map[string]string{}
}
