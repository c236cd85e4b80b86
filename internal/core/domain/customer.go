package domain

import "time"

type CustomerType int

const (
	CustomerBuyer          CustomerType = iota // Alıcı
	CustomerSeller                             // Satıcı
	CustomerBuyerAndSeller                     // AlıcıSatıcı
)

// CanBuy reports whether the customer may appear in buyer-selection contexts.
// This is a soft UI constraint, not a hard invariant.
func (t CustomerType) CanBuy() bool {
	return t == CustomerBuyer || t == CustomerBuyerAndSeller
}

// InterestType is one of twelve categorized interest tags plus "all".
type InterestType int

const (
	InterestLand           InterestType = iota // Arsa
	InterestIndustrialLand                     // Sanayi Arsası
	InterestFarmLand                           // Çiftlik Arsası
	InterestLandShare                          // Arsadan Hisse
	InterestField                              // Tarla
	InterestVineyard                           // Bağ
	InterestGarden                             // Bahçe
	InterestFieldShare                         // Tarladan Hisse
	InterestApartment                          // Daire
	InterestRental                             // Kiralık Daire
	InterestWorkplace                          // İşyeri
	InterestRentalWork                         // Kiralık İşyeri
	InterestAll                                // Tümü
)

type Customer struct {
	ID                       int64
	FullName                 string
	Phone                    string
	Budget                   float64
	Notes                    string
	InterestType             InterestType
	CustomerType             CustomerType
	ProvincePreferencesCount int
	CreatedAt                time.Time
}
