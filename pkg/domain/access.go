package domain

// AccessLevel is a totally ordered permission tier. Permission checks compare
// ranks; they never consult an external identity system.
type AccessLevel string

// Canonical access levels, lowest to highest.
const (
	AccessEmployee      AccessLevel = "employee"
	AccessManager       AccessLevel = "manager"
	AccessLocationAdmin AccessLevel = "location_admin"
	AccessMasterAdmin   AccessLevel = "master_admin"
)

var accessRanks = map[AccessLevel]int{
	AccessEmployee:      0,
	AccessManager:       1,
	AccessLocationAdmin: 2,
	AccessMasterAdmin:   3,
}

// Rank returns the ordinal position of the level. Unknown levels rank below
// employee so a corrupted value never grants access.
func (a AccessLevel) Rank() int {
	if r, ok := accessRanks[a]; ok {
		return r
	}
	return -1
}

// HasAccess reports whether a user holding level a satisfies the required
// level.
func (a AccessLevel) HasAccess(required AccessLevel) bool {
	return a.Rank() >= required.Rank()
}

// HasAccess reports whether the document's current user satisfies the
// required access level. A missing current user never has access.
func (d Document) HasAccess(required AccessLevel) bool {
	user, ok := d.FindEmployee(d.CurrentUserID)
	if !ok {
		return false
	}
	return user.AccessLevel.HasAccess(required)
}
