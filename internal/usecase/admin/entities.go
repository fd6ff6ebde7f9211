package admin

type SignUpInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminDTO struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type SignInResult struct {
	AdminID     string `json:"admin_id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// CreatePropertyInput carries the listing form fields. Documents maps the
// multipart field name to the stored file's public URL.
type CreatePropertyInput struct {
	PropertyName     string `json:"property_name" validate:"required"`
	PropertyLocation string `json:"property_location" validate:"required"`
	LockPeriod       string `json:"lock_period"`

	SharedType           string `json:"shared_type"`
	AboutSharedType      string `json:"about_shared_type"`
	HoldingCompany       string `json:"holding_company"`
	AboutHoldingCompany  string `json:"about_holding_company"`
	AboutProperty        string `json:"about_property"`
	AboutTotalAssetValue string `json:"about_total_asset_value"`
	Faqs                 string `json:"faqs"`

	TotalAssetValue float64 `json:"total_asset_value" validate:"required,gt=0"`
	TotalToken      float64 `json:"total_token" validate:"required,gt=0"`

	Documents map[string]string `json:"-"`
}
