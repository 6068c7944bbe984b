// internal/model/language.go
package model

// Language は単語帳の対象言語 (例: ar = Arabic)
type Language struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// 関連 (Preload用)
	Terms []Term `gorm:"foreignKey:LanguageID" json:"-"`
}

func (Language) TableName() string {
	return "languages"
}

// LanguageResponse は言語一覧APIのレスポンスDTO
type LanguageResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func NewLanguageResponse(l *Language) *LanguageResponse {
	return &LanguageResponse{ID: l.ID, Code: l.Code, Name: l.Name}
}
