package models

type Language string

const (
	LanguageBangla  Language = "bn"
	LanguageEnglish Language = "en"
)

type NotificationSettings struct {
	Email       bool `json:"email"`
	SMS         bool `json:"sms"`
	Promotional bool `json:"promotional"`
}

type PrivacySettings struct {
	DataCollection    bool `json:"dataCollection"`
	ThirdPartySharing bool `json:"thirdPartySharing"`
}

type AccountInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateLanguageRequest struct {
	Language Language `json:"language" validate:"required,oneof=bn en"`
}

type UpdateAccountRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,bd_mobile"`
}
