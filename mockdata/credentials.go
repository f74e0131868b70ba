package mockdata

import "github.com/nohsangwoo/smart-wholesale-platform-sub001/models"

// Credential is one hardcoded known-good login pair. There is exactly one per
// role; this stands in for a real user directory.
type Credential struct {
	Email    string
	Password string
	Name     string
	Phone    string
	VendorID string // vendor role only; matched against the vendor catalog
}

var Credentials = map[models.Role]Credential{
	models.RoleBuyer:  {Email: "test@test.com", Password: "test12!", Name: "김테스트", Phone: "010-1234-5678"},
	models.RoleVendor: {Email: "vendor@test.com", Password: "vendor12!", Name: "글로벌 익스프레스", VendorID: "vendor-001"},
	models.RoleAdmin:  {Email: "admin@test.com", Password: "admin12!", Name: "관리자"},
}
