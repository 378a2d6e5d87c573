package model

// Setting is a key/value site configuration row, upserted by key.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys that hold asset references or their captions.
const (
	SettingSiteLogo         = "site_logo"
	SettingHeroBannerType   = "hero_banner_type"
	SettingHeroBannerURL    = "hero_banner_url"
	SettingHeroBannerUpload = "hero_banner_upload"
	SettingHomeSloganImage  = "home_slogan_img"
	SettingDealsBanner      = "deals_banner_upload"
	SettingNewBanner        = "new_banner_upload"
)

// AssetSettingKeys lists every settings key whose value is an asset
// reference. about_image_1..3 are generated alongside these.
func AssetSettingKeys() []string {
	keys := []string{
		SettingSiteLogo,
		SettingHeroBannerUpload,
		SettingHomeSloganImage,
		SettingDealsBanner,
		SettingNewBanner,
	}
	for _, n := range []string{"1", "2", "3"} {
		keys = append(keys, "about_image_"+n)
	}
	return keys
}
