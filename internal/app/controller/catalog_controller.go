package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/service"
	apperrors "github.com/jlin/peacepet-backend/internal/errors"
	"github.com/jlin/peacepet-backend/internal/middleware"
)

// featuredHomeLimit caps the featured products shown on the home page.
const featuredHomeLimit = 6

// CatalogController serves the public storefront pages.
type CatalogController struct {
	categoryService service.CategoryService
	productService  service.ProductService
}

func NewCatalogController(categoryService service.CategoryService, productService service.ProductService) *CatalogController {
	return &CatalogController{
		categoryService: categoryService,
		productService:  productService,
	}
}

// aboutImage is one entry of the about-page image strip, assembled from
// the settings map.
type aboutImage struct {
	Key       string `json:"key"`
	Src       string `json:"src"`
	CaptionEN string `json:"caption_en"`
	CaptionZH string `json:"caption_zh"`
}

func aboutImagesFromSettings(settings map[string]string) []aboutImage {
	images := make([]aboutImage, 0, 3)
	for _, n := range []string{"1", "2", "3"} {
		images = append(images, aboutImage{
			Key:       "about_image_" + n,
			Src:       settings["about_image_"+n],
			CaptionEN: settings["about_caption_"+n+"_en"],
			CaptionZH: settings["about_caption_"+n+"_zh"],
		})
	}
	return images
}

// Home returns the featured products for the landing page.
// GET /
func (ctrl *CatalogController) Home(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.GetFeatured(featuredHomeLimit)
	if err != nil {
		log.Error("Failed to fetch featured products", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": middleware.GetNavCategories(c),
		"settings":   middleware.GetSettings(c),
		"lang":       middleware.GetLang(c),
	})
}

// About returns the about-page image strip.
// GET /about
func (ctrl *CatalogController) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"about_images": aboutImagesFromSettings(middleware.GetSettings(c)),
		"categories":   middleware.GetNavCategories(c),
		"lang":         middleware.GetLang(c),
	})
}

// CatalogIndex returns the category navigation.
// GET /catalog
func (ctrl *CatalogController) CatalogIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": middleware.GetNavCategories(c),
		"lang":       middleware.GetLang(c),
	})
}

// CategoryDetail returns one category and its products.
// GET /catalog/:slug
func (ctrl *CatalogController) CategoryDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	category, err := ctrl.categoryService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to fetch category", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "")
		return
	}

	products, err := ctrl.productService.GetByCategory(category.ID)
	if err != nil {
		log.Error("Failed to fetch category products", err, map[string]interface{}{
			"category_id": category.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": products,
		"lang":     middleware.GetLang(c),
	})
}

// ProductDetail returns a product with bullets, gallery and reviews.
// GET /product/:id
func (ctrl *CatalogController) ProductDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	detail, err := ctrl.productService.GetDetail(id, middleware.GetLang(c))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product detail", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Deals returns the deal-flagged products.
// GET /deals
func (ctrl *CatalogController) Deals(c *gin.Context) {
	ctrl.listByFlag(c, ctrl.productService.GetDeals)
}

// NewArrivals returns the new-flagged products.
// GET /new-arrivals
func (ctrl *CatalogController) NewArrivals(c *gin.Context) {
	ctrl.listByFlag(c, ctrl.productService.GetNewArrivals)
}

func (ctrl *CatalogController) listByFlag(c *gin.Context, list func() ([]model.Product, error)) {
	log := middleware.GetLoggerFromContext(c)

	products, err := list()
	if err != nil {
		log.Error("Failed to fetch product listing", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"settings": middleware.GetSettings(c),
		"lang":     middleware.GetLang(c),
	})
}

// SwitchLanguage stores the language choice and sends the visitor back.
// GET /switch-lang/:lang
func (ctrl *CatalogController) SwitchLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if lang == model.LangEN || lang == model.LangZH {
		c.SetCookie(middleware.LangCookieName, lang, 0, "/", "", false, false)
	}

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}
