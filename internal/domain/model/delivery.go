package model

// 配送先スナップショット。注文時点の会員住所をコピーして注文が所有する。
// 会員が後から住所を変えても過去の注文には影響しない
type Delivery struct {
	PostalCode string `gorm:"type:varchar(20);not null" json:"postal_code"`
	Prefecture string `gorm:"type:varchar(100);not null" json:"prefecture"`
	City       string `gorm:"type:varchar(255);not null" json:"city"`
	Line1      string `gorm:"type:varchar(255);not null" json:"line1"`
}

// NewDelivery は会員の現住所からスナップショットを作る
func NewDelivery(m Member) Delivery {
	return Delivery{
		PostalCode: m.PostalCode,
		Prefecture: m.Prefecture,
		City:       m.City,
		Line1:      m.Line1,
	}
}
