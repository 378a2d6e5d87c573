package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/service"
	apperrors "github.com/jlin/peacepet-backend/internal/errors"
	"github.com/jlin/peacepet-backend/internal/middleware"
)

// Admin panel action discriminators posted with the multipart form.
const (
	ActionUpdateSettings = "UPDATE_SETTINGS"
	ActionAddProduct     = "ADD_PRODUCT"
	ActionAddCategory    = "ADD_CATEGORY"
	ActionAddFeedback    = "ADD_FEEDBACK"
)

// settingAssetField maps one admin form asset field onto its settings key,
// its delete checkbox and its object-store name prefix.
type settingAssetField struct {
	fileField   string
	settingKey  string
	deleteField string
	prefix      string
}

var settingAssetFields = []settingAssetField{
	{"site_logo_file", "site_logo", "delete_logo", "logo"},
	{"home_slogan_image_file", "home_slogan_img", "delete_home_slogan_image", "home_slogan"},
	{"deals_banner_file", "deals_banner_upload", "delete_deals_banner", "deals_banner"},
	{"new_banner_file", "new_banner_upload", "delete_new_banner", "new_banner"},
	{"about_image_1_file", "about_image_1", "delete_about_image_1", "about_1"},
	{"about_image_2_file", "about_image_2", "delete_about_image_2", "about_2"},
	{"about_image_3_file", "about_image_3", "delete_about_image_3", "about_3"},
}

var heroBannerField = settingAssetField{
	"hero_banner_upload_file", "hero_banner_upload", "delete_hero_banner_upload", "hero",
}

// settingsExcludedKeys are the form fields the generic settings upsert loop
// must skip: the discriminator, the csrf token, and every asset field
// handled above plus the hero banner pair.
var settingsExcludedKeys = buildSettingsExcludedKeys()

func buildSettingsExcludedKeys() map[string]bool {
	excluded := map[string]bool{
		"admin_action":     true,
		"csrf_token":       true,
		"hero_banner_type": true,
		"hero_banner_url":  true,
	}
	for _, f := range append(settingAssetFields, heroBannerField) {
		excluded[f.fileField] = true
		excluded[f.deleteField] = true
	}
	return excluded
}

type AdminController struct {
	categoryService service.CategoryService
	productService  service.ProductService
	feedbackService service.FeedbackService
	orderService    service.OrderService
	settingService  service.SettingService
}

func NewAdminController(
	categoryService service.CategoryService,
	productService service.ProductService,
	feedbackService service.FeedbackService,
	orderService service.OrderService,
	settingService service.SettingService,
) *AdminController {
	return &AdminController{
		categoryService: categoryService,
		productService:  productService,
		feedbackService: feedbackService,
		orderService:    orderService,
		settingService:  settingService,
	}
}

// Dashboard returns everything the admin panel renders: inquiries,
// categories, products with category names, the settings map and the
// about-image strip.
// GET /admin
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.List()
	if err != nil {
		log.Error("Failed to list order inquiries", err)
		apperrors.InternalError(c, "")
		return
	}

	categories, err := ctrl.categoryService.List()
	if err != nil {
		log.Error("Failed to list categories", err)
		apperrors.InternalError(c, "")
		return
	}

	products, err := ctrl.productService.ListAll()
	if err != nil {
		log.Error("Failed to list products", err)
		apperrors.InternalError(c, "")
		return
	}

	settings := middleware.GetSettings(c)

	c.JSON(http.StatusOK, gin.H{
		"orders":       orders,
		"categories":   categories,
		"products":     products,
		"settings":     settings,
		"about_images": aboutImagesFromSettings(settings),
		"active_tab":   c.DefaultQuery("tab", "products"),
	})
}

// Mutate dispatches the admin panel form post on its action discriminator.
// POST /admin
func (ctrl *AdminController) Mutate(c *gin.Context) {
	switch c.PostForm("admin_action") {
	case ActionUpdateSettings:
		ctrl.updateSettings(c)
	case ActionAddProduct:
		ctrl.addProduct(c)
	case ActionAddCategory:
		ctrl.addCategory(c)
	case ActionAddFeedback:
		ctrl.addFeedback(c)
	default:
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown admin action")
	}
}

func (ctrl *AdminController) updateSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()
	var warnings []string

	apply := func(f settingAssetField) bool {
		change, err := assetChange(c, f.fileField, f.deleteField)
		if err != nil {
			log.Error("Failed to read uploaded file", err, map[string]interface{}{
				"field": f.fileField,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded file")
			return false
		}
		w, err := ctrl.settingService.ApplyAssetSetting(ctx, f.settingKey, f.prefix, change)
		warnings = append(warnings, w...)
		if err != nil {
			log.Error("Failed to update asset setting", err, map[string]interface{}{
				"key": f.settingKey,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError,
				apperrors.UploadFailed, "Failed to store uploaded image")
			return false
		}
		return true
	}

	for _, f := range settingAssetFields {
		if !apply(f) {
			return
		}
	}

	// The hero banner is either an external URL or an uploaded asset,
	// selected by hero_banner_type.
	bannerType := c.PostForm("hero_banner_type")
	if err := ctrl.settingService.UpsertValue("hero_banner_type", bannerType); err != nil {
		apperrors.InternalError(c, "")
		return
	}
	if bannerType == "url" {
		if err := ctrl.settingService.UpsertValue("hero_banner_url", c.DefaultPostForm("hero_banner_url", "")); err != nil {
			apperrors.InternalError(c, "")
			return
		}
	} else if !apply(heroBannerField) {
		return
	}

	// Every remaining scalar form field is upserted verbatim.
	if form, err := c.MultipartForm(); err == nil {
		for key, values := range form.Value {
			if settingsExcludedKeys[key] || len(values) == 0 {
				continue
			}
			if err := ctrl.settingService.UpsertValue(key, values[0]); err != nil {
				apperrors.InternalError(c, "")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated",
		"warnings": warnings,
		"tab":      "settings",
	})
}

func parseProductInput(c *gin.Context) service.ProductInput {
	return service.ProductInput{
		CategoryID:     formUint(c, "category_id"),
		TitleEN:        c.PostForm("title_en"),
		TitleZH:        c.PostForm("title_zh"),
		Price:          formFloat(c, "price", 0),
		BulletPointsEN: c.DefaultPostForm("bullet_points_en", ""),
		BulletPointsZH: c.DefaultPostForm("bullet_points_zh", ""),
		DescriptionEN:  c.DefaultPostForm("description_en", ""),
		DescriptionZH:  c.DefaultPostForm("description_zh", ""),
		MonthlySales:   formInt(c, "monthly_sales", 0),
		AvgRating:      formFloat(c, "avg_rating", 5.0),
		IsNew:          c.PostForm("is_new") == checkboxOn,
		IsDeal:         c.PostForm("is_deal") == checkboxOn,
		IsFeatured:     c.PostForm("is_featured") == checkboxOn,
	}
}

func (ctrl *AdminController) addProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	mainImage, err := formFile(c, "main_image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded file")
		return
	}
	gallery, err := formFiles(c, "a_plus_images")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded files")
		return
	}

	product, warnings, err := ctrl.productService.Create(c.Request.Context(), parseProductInput(c), mainImage, gallery)
	if err != nil {
		log.Error("Failed to add product", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError,
			apperrors.UploadFailed, "Failed to add product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Product added",
		"product":  product,
		"warnings": warnings,
		"tab":      "products",
	})
}

func (ctrl *AdminController) addCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	image, err := formFile(c, "category_image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded file")
		return
	}

	input := service.CategoryInput{
		NameEN:    c.PostForm("name_en"),
		NameZH:    c.PostForm("name_zh"),
		Slug:      c.DefaultPostForm("slug", ""),
		SortOrder: formInt(c, "sort_order", 0),
	}

	category, warnings, err := ctrl.categoryService.Create(c.Request.Context(), input, image)
	if err != nil {
		log.Error("Failed to add category", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError,
			apperrors.UploadFailed, "Failed to add category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category added",
		"category": category,
		"warnings": warnings,
		"tab":      "categories",
	})
}

func (ctrl *AdminController) addFeedback(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	image, err := formFile(c, "feedback_image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded file")
		return
	}

	input := service.FeedbackInput{
		ProductID: formUint(c, "product_id"),
		Rating:    formFloat(c, "rating", 5.0),
		TextEN:    c.DefaultPostForm("text_en", ""),
		TextZH:    c.DefaultPostForm("text_zh", ""),
	}

	feedback, warnings, err := ctrl.feedbackService.Create(c.Request.Context(), input, image)
	if err != nil {
		log.Error("Failed to add feedback", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError,
			apperrors.UploadFailed, "Failed to add feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Feedback added",
		"feedback": feedback,
		"warnings": warnings,
		"tab":      "feedback",
	})
}

// EditProductForm returns the product plus the category list for the edit
// screen.
// GET /admin/edit-product/:id
func (ctrl *AdminController) EditProductForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	product, err := ctrl.productService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	categories, err := ctrl.categoryService.List()
	if err != nil {
		log.Error("Failed to list categories", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":    product,
		"categories": categories,
		"gallery":    product.GalleryURLs(),
	})
}

// EditProduct applies a product edit. Asset fields are handled per the
// synchronizer policy; fields without new files stay untouched.
// POST /admin/edit-product/:id
func (ctrl *AdminController) EditProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	mainImage, err := formFile(c, "main_image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded file")
		return
	}
	gallery, err := formFiles(c, "a_plus_images")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded files")
		return
	}

	product, warnings, err := ctrl.productService.Update(
		c.Request.Context(), id, parseProductInput(c),
		service.AssetChange{File: mainImage}, gallery,
	)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError,
			apperrors.UploadFailed, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Product updated",
		"product":  product,
		"warnings": warnings,
	})
}

// EditCategoryForm returns the category for the edit screen.
// GET /admin/edit-category/:id
func (ctrl *AdminController) EditCategoryForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid category ID")
		return
	}

	category, err := ctrl.categoryService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to fetch category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// EditCategory applies a category edit, honoring the delete-image checkbox.
// POST /admin/edit-category/:id
func (ctrl *AdminController) EditCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid category ID")
		return
	}

	change, err := assetChange(c, "category_image", "delete_image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Could not read uploaded file")
		return
	}

	input := service.CategoryInput{
		NameEN:    c.PostForm("name_en"),
		NameZH:    c.PostForm("name_zh"),
		Slug:      c.DefaultPostForm("slug", ""),
		SortOrder: formInt(c, "sort_order", 0),
	}

	category, warnings, err := ctrl.categoryService.Update(c.Request.Context(), id, input, change)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError,
			apperrors.UploadFailed, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated",
		"category": category,
		"warnings": warnings,
		"tab":      "categories",
	})
}

// DeleteProduct removes a product and best-effort-deletes its assets.
// GET /admin/delete-product/:id
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	warnings, err := ctrl.productService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Product deleted",
		"warnings": warnings,
		"tab":      "products",
	})
}

// DeleteCategory removes a category and best-effort-deletes its image.
// GET /admin/delete-category/:id
func (ctrl *AdminController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := paramID(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid category ID")
		return
	}

	warnings, err := ctrl.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category deleted",
		"warnings": warnings,
		"tab":      "categories",
	})
}
