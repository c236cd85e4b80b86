package domain

// The location tree is plain containment: Province 1-* District 1-* Neighborhood.
// Properties reference the leaf ids; nothing here has any algorithm of its own.

type Province struct {
	ID   int64
	Name string
}

type District struct {
	ID         int64
	ProvinceID int64
	Name       string
}

type Neighborhood struct {
	ID         int64
	DistrictID int64
	Name       string
}
