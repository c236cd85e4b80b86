package constants

import "fmt"

// Endpoint paths of the estate backend. The casing is uneven because the
// backend's routes are.

const (
	EndpointCustomers  = "/Customer"
	EndpointProperties = "/Property"
	EndpointSales      = "/sale"

	EndpointProvinces     = "/Province"
	EndpointDistricts     = "/District"
	EndpointNeighborhoods = "/Neighborhood"

	EndpointAdminUsers  = "/admin/users"
	EndpointOnlineUsers = "/UserActivity/online-users"
)

func CustomerByID(id int64) string { return fmt.Sprintf("%s/%d", EndpointCustomers, id) }

func PropertyByID(id int64) string { return fmt.Sprintf("%s/%d", EndpointProperties, id) }

func PropertyStatus(id int64) string { return fmt.Sprintf("%s/%d/status", EndpointProperties, id) }

func PropertyPriceHistory(id int64) string {
	return fmt.Sprintf("%s/%d/price-history", EndpointProperties, id)
}

func SaleByID(id int64) string { return fmt.Sprintf("%s/%d", EndpointSales, id) }

func SalesByProperty(propertyID int64) string {
	return fmt.Sprintf("%s/property/%d", EndpointSales, propertyID)
}

func CanSellProperty(propertyID int64) string {
	return fmt.Sprintf("%s/can-sell/%d", EndpointSales, propertyID)
}

func AdminUserByID(id string) string { return fmt.Sprintf("%s/%s", EndpointAdminUsers, id) }

func AdminUserPassword(id string) string { return fmt.Sprintf("%s/%s/password", EndpointAdminUsers, id) }

func AdminUserRole(id string) string { return fmt.Sprintf("%s/%s/role", EndpointAdminUsers, id) }

func AdminUserLock(id string) string { return fmt.Sprintf("%s/%s/lock", EndpointAdminUsers, id) }
